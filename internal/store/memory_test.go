package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	value, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemoryStore_SetGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, ArticlesKey, []byte(`[{"id":"a1"}]`)))

	value, ok, err := s.Get(ctx, ArticlesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a1"}]`, string(value))
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, UsersKey, []byte(`old`)))
	require.NoError(t, s.Set(ctx, UsersKey, []byte(`new`)))

	value, ok, err := s.Get(ctx, UsersKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(value))
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, CurrentUserKey, []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, s.Delete(ctx, CurrentUserKey))

	_, ok, err := s.Get(ctx, CurrentUserKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, CurrentUserKey))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, UsersKey, []byte("abc")))

	value, _, err := s.Get(ctx, UsersKey)
	require.NoError(t, err)
	value[0] = 'X'

	again, _, err := s.Get(ctx, UsersKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
