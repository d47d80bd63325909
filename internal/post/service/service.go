package service

import (
	"context"
	"errors"

	"github.com/scriblr/blog-service/internal/post"
	"github.com/scriblr/blog-service/internal/post/repository"
)

var (
	// ErrNotFound reports an operation against an id with no stored post.
	ErrNotFound = errors.New("post not found")
)

// ValidationError reports a create/update payload that violates the post
// field contract. It maps to HTTP 400 at the handler boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid field " + e.Field + ": " + e.Reason
}

func missing(field string) error {
	return &ValidationError{Field: field, Reason: "must be present and non-empty"}
}

// CreatePayload is the request body for creating a post. Content uses a
// pointer so an absent field and an empty string are distinguishable:
// content must be sent but may be empty.
type CreatePayload struct {
	Title   string       `json:"title"`
	Content *string      `json:"content"`
	Author  *post.Author `json:"author"`
}

// UpdatePayload is the request body for a partial update. Nil fields keep
// their stored value. Author, when supplied, replaces the whole composite.
type UpdatePayload struct {
	ID      string       `json:"id"`
	Title   *string      `json:"title"`
	Content *string      `json:"content"`
	Author  *post.Author `json:"author"`
}

// Service is the post resource manager: it validates payloads, delegates
// persistence to the injected store and shapes documents into the public
// response representation. It holds no state of its own between calls.
type Service interface {
	List(ctx context.Context) ([]post.Shaped, error)
	Get(ctx context.Context, id string) (post.Shaped, error)
	Create(ctx context.Context, p CreatePayload) (post.Shaped, error)
	Update(ctx context.Context, id string, p UpdatePayload) (post.Shaped, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store repository.Store
}

// New returns a Service backed by the given store.
func New(store repository.Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]post.Shaped, error) {
	docs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]post.Shaped, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Shape())
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (post.Shaped, error) {
	d, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return post.Shaped{}, ErrNotFound
		}
		return post.Shaped{}, err
	}
	return d.Shape(), nil
}

func (s *service) Create(ctx context.Context, p CreatePayload) (post.Shaped, error) {
	if p.Title == "" {
		return post.Shaped{}, missing("title")
	}
	if p.Content == nil {
		return post.Shaped{}, &ValidationError{Field: "content", Reason: "must be present"}
	}
	if p.Author == nil {
		return post.Shaped{}, missing("author")
	}
	if p.Author.FirstName == "" {
		return post.Shaped{}, missing("author.firstName")
	}
	if p.Author.LastName == "" {
		return post.Shaped{}, missing("author.lastName")
	}
	doc := &post.Post{Title: p.Title, Content: *p.Content, Author: *p.Author}
	doc, err := s.store.Insert(ctx, doc)
	if err != nil {
		return post.Shaped{}, err
	}
	return doc.Shape(), nil
}

func (s *service) Update(ctx context.Context, id string, p UpdatePayload) (post.Shaped, error) {
	if p.ID != "" && p.ID != id {
		return post.Shaped{}, &ValidationError{Field: "id", Reason: "body id does not match path id"}
	}
	if p.Title != nil && *p.Title == "" {
		return post.Shaped{}, missing("title")
	}
	if p.Author != nil {
		if p.Author.FirstName == "" {
			return post.Shaped{}, missing("author.firstName")
		}
		if p.Author.LastName == "" {
			return post.Shaped{}, missing("author.lastName")
		}
	}
	u := repository.Update{Title: p.Title, Content: p.Content, Author: p.Author}
	if err := s.store.UpdateByID(ctx, id, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return post.Shaped{}, ErrNotFound
		}
		return post.Shaped{}, err
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		// deleting an unknown id is indistinguishable from success
		return nil
	}
	return err
}
