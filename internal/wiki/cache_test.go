// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_PutGet(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()

	_, ok := cache.Get(ctx, "Saturn")
	assert.False(t, ok, "empty cache should miss")

	require.NoError(t, cache.Put(ctx, "Saturn", "<p>rings</p>"))

	html, ok := cache.Get(ctx, "Saturn")
	require.True(t, ok)
	assert.Equal(t, "<p>rings</p>", html)
}

func TestPageCache_Overwrite(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "Saturn", "old"))
	require.NoError(t, cache.Put(ctx, "Saturn", "new"))

	html, ok := cache.Get(ctx, "Saturn")
	require.True(t, ok)
	assert.Equal(t, "new", html)
}

func TestPageCache_TTLExpiry(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Millisecond)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "Saturn", "<p>rings</p>"))

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(ctx, "Saturn")
	assert.False(t, ok, "entry past its TTL should miss")
}

func TestPageCache_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	cache, err := OpenCache(path, time.Hour)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, "Saturn", "<p>rings</p>"))
	require.NoError(t, cache.Close())

	reopened, err := OpenCache(path, time.Hour)
	require.NoError(t, err)
	defer reopened.Close()

	html, ok := reopened.Get(ctx, "Saturn")
	require.True(t, ok)
	assert.Equal(t, "<p>rings</p>", html)
}
