package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scriblr/blog-service/internal/database"
	"github.com/scriblr/blog-service/internal/post/handler"
	"github.com/scriblr/blog-service/internal/post/repository"
	"github.com/scriblr/blog-service/internal/post/service"
)

// Slim entrypoint: posts API only, no metrics or rate limiting. Useful for
// local development and the integration test environment.
func main() {
	port := os.Getenv("BLOG_SERVICE_PORT")
	if port == "" {
		port = "4000"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Prefer the Mongo-backed store when MONGODB_URI is provided.
	var store repository.Store
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI != "" {
		// attempt a connection with a short timeout; fall back to memory on failure
		client, err := database.ConnectMongo(context.Background(), mongoURI, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v) — using memory-backed store", err)
			store = repository.NewMemoryStore()
		} else {
			col := client.Database(os.Getenv("MONGODB_DATABASE")).Collection("posts")
			store = repository.NewMongoStore(col)
		}
	} else {
		store = repository.NewMemoryStore()
	}

	handler.RegisterPostRoutes(r, service.New(store))

	log.Printf("blog service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
