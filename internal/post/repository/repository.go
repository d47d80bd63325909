package repository

import (
	"context"
	"errors"

	"github.com/scriblr/blog-service/internal/post"
)

var (
	ErrNotFound = errors.New("post not found")
)

// Update carries the fields of a partial update. Nil fields are left
// untouched in the stored document.
type Update struct {
	Title   *string
	Content *string
	Author  *post.Author
}

// Store is the persistence contract the post service depends on. Two
// implementations exist: MemoryStore (unit tests, no-database fallback)
// and MongoStore.
type Store interface {
	// Insert assigns a fresh ID and Created timestamp, persists the
	// document and returns it.
	Insert(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// FindOne returns an arbitrary stored post, ErrNotFound when empty.
	FindOne(ctx context.Context) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	Count(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, id string, u Update) error
	DeleteByID(ctx context.Context, id string) error
}
