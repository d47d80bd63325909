package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>blog-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the posts API.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blog-service", "version": "v0.1.0" },
  "paths": {
    "/posts": {
      "get": { "summary": "List all posts", "responses": { "200": { "description": "array of shaped posts" } } },
      "post": {
        "summary": "Create a post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"}}}}}}}},
        "responses": { "201": { "description": "shaped post with assigned id and created" }, "400": { "description": "missing required field" } }
      }
    },
    "/posts/{id}": {
      "get": { "summary": "Get a post", "responses": { "200": { "description": "shaped post" }, "404": { "description": "unknown id" } } },
      "put": {
        "summary": "Update a post (partial)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"}}}}}}}},
        "responses": { "201": { "description": "shaped updated post" }, "400": { "description": "invalid field" }, "404": { "description": "unknown id" } }
      },
      "delete": { "summary": "Delete a post", "responses": { "204": { "description": "deleted (or never existed)" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
