package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scriblr/blog-service/internal/post"
)

// MemoryStore is a mutex-guarded in-memory Store used by unit tests and as
// the startup fallback when no MongoDB URI is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	seq   uint64
	store map[string]*post.Post
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: make(map[string]*post.Post)}
}

func (m *MemoryStore) Insert(ctx context.Context, p *post.Post) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// timestamp plus sequence keeps ids unique even in tight seeding loops
	m.seq++
	p.ID = fmt.Sprintf("post_%s_%d", time.Now().Format("20060102T150405.000000000"), m.seq)
	p.Created = time.Now()
	cp := *p
	m.store[p.ID] = &cp
	return p, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id string) (*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindOne(ctx context.Context) (*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.store {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindAll(ctx context.Context) ([]*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*post.Post, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryStore) UpdateByID(ctx context.Context, id string, u Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	return nil
}

func (m *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
