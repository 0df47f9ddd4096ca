package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skynet-news/internal/store"
)

func TestPostgresStore_RoundTrip(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	s := store.NewPostgresStore(tdb.Pool)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, store.ArticlesKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, store.ArticlesKey, []byte(`[{"id":"a1"}]`)))

	value, ok, err := s.Get(ctx, store.ArticlesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"a1"}]`, string(value))
}

func TestPostgresStore_SetOverwrites(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	s := store.NewPostgresStore(tdb.Pool)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, store.UsersKey, []byte(`[{"email":"old@x.com"}]`)))
	require.NoError(t, s.Set(ctx, store.UsersKey, []byte(`[{"email":"new@x.com"}]`)))

	value, ok, err := s.Get(ctx, store.UsersKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"email":"new@x.com"}]`, string(value))
}

func TestPostgresStore_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	s := store.NewPostgresStore(tdb.Pool)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, store.CurrentUserKey, []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, s.Delete(ctx, store.CurrentUserKey))

	_, ok, err := s.Get(ctx, store.CurrentUserKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, store.CurrentUserKey))
}
