package repository

import (
	"context"
	"testing"

	"github.com/scriblr/blog-service/internal/post"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := &post.Post{Title: "t", Content: "hello", Author: post.Author{FirstName: "Ada", LastName: "Lovelace"}}
	p, err := s.Insert(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.False(t, p.Created.IsZero())

	got, err := s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Content)

	one, err := s.FindOne(ctx)
	require.NoError(t, err)
	require.Equal(t, p.ID, one.ID)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	newContent := "new"
	err = s.UpdateByID(ctx, p.ID, Update{Content: &newContent})
	require.NoError(t, err)
	got2, err := s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "new", got2.Content)
	require.Equal(t, "t", got2.Title)
	require.True(t, p.Created.Equal(got2.Created))

	err = s.DeleteByID(ctx, p.ID)
	require.NoError(t, err)
	_, err = s.FindByID(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.FindByID(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindOne(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	title := "x"
	require.ErrorIs(t, s.UpdateByID(ctx, "nope", Update{Title: &title}), ErrNotFound)
	require.ErrorIs(t, s.DeleteByID(ctx, "nope"), ErrNotFound)
}

func TestMemoryStoreAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p, err := s.Insert(ctx, &post.Post{Title: "t", Author: post.Author{FirstName: "A", LastName: "B"}})
		require.NoError(t, err)
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), n)
}
