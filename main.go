package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scriblr/blog-service/internal/config"
	"github.com/scriblr/blog-service/internal/database"
	"github.com/scriblr/blog-service/internal/post/handler"
	"github.com/scriblr/blog-service/internal/post/repository"
	"github.com/scriblr/blog-service/internal/post/service"
	"github.com/scriblr/blog-service/pkg/logger"
	"github.com/scriblr/blog-service/pkg/metrics"
	"github.com/scriblr/blog-service/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter keyed by client IP
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races; fall
	// back to the in-memory store when no URI is configured or every attempt
	// fails.
	ctx := context.Background()
	var store repository.Store
	usingMongo := false
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v — using in-memory store", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			col := client.Database(cfg.MongoDB.Database).Collection("posts")
			store = repository.NewMongoStore(col)
			usingMongo = true
			logger.Infof("Using MongoDB for post storage (db=%s)", cfg.MongoDB.Database)
		}
	}
	if store == nil {
		store = repository.NewMemoryStore()
		logger.Warnf("posts are stored in memory only; set MONGODB_URI for durable storage")
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — report dependency state; the service itself is
	// always able to answer (memory store needs nothing), so only a
	// configured-but-unavailable dependency flips readiness off
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["store"] = true
		deps["mongodb"] = usingMongo || cfg.MongoDB.URI == ""
		if !deps["mongodb"] {
			ready = false
		}

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// Posts API + docs
	svc := service.New(store)
	handler.RegisterPostRoutes(r, svc)
	handler.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting blog service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
