package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scriblr/blog-service/internal/post/service"
	"github.com/scriblr/blog-service/pkg/logger"
	"github.com/scriblr/blog-service/pkg/metrics"
)

// RegisterPostRoutes wires the /posts CRUD surface onto the engine.
// Note: PUT answers 201 rather than 200 — long-standing wire contract that
// existing clients and the test suite assert on.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/posts", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, "list", err)
			return
		}
		metrics.PostOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, list)
	})

	r.POST("/posts", func(c *gin.Context) {
		var req service.CreatePayload
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.PostOperations.WithLabelValues("create", "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			fail(c, "create", err)
			return
		}
		metrics.PostOperations.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, created)
	})

	r.GET("/posts/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, "get", err)
			return
		}
		metrics.PostOperations.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, p)
	})

	r.PUT("/posts/:id", func(c *gin.Context) {
		var req service.UpdatePayload
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.PostOperations.WithLabelValues("update", "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			fail(c, "update", err)
			return
		}
		metrics.PostOperations.WithLabelValues("update", "ok").Inc()
		c.JSON(http.StatusCreated, updated)
	})

	r.DELETE("/posts/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, "delete", err)
			return
		}
		metrics.PostOperations.WithLabelValues("delete", "ok").Inc()
		c.Status(http.StatusNoContent)
	})
}

// fail maps service errors onto the wire contract: validation -> 400,
// unknown id -> 404, anything else (store failures) -> 500 unmodified
// beyond logging.
func fail(c *gin.Context, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.PostOperations.WithLabelValues(op, "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		metrics.PostOperations.WithLabelValues(op, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Errorf("posts %s: %v", op, err)
		metrics.PostOperations.WithLabelValues(op, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
