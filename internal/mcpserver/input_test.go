package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequiresExactlyOneInput(t *testing.T) {
	_, err := specInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = specInput{File: "a.yaml", Content: "openapi: 3.0.0"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestResolveContentCached(t *testing.T) {
	specCache.reset()
	t.Cleanup(specCache.reset)

	first, err := specInput{Content: petstoreDoc}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	second, err := specInput{Content: petstoreDoc}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResolveFile(t *testing.T) {
	specCache.reset()
	t.Cleanup(specCache.reset)

	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreDoc), 0o644))

	result, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, 1, specCache.size())
}

func TestCacheEviction(t *testing.T) {
	cache := &specCacheStore{entries: map[string]*cacheEntry{}, maxSize: 2}

	cache.putWithTTL("a", nil, time.Minute)
	time.Sleep(time.Millisecond)
	cache.putWithTTL("b", nil, time.Minute)
	time.Sleep(time.Millisecond)
	cache.putWithTTL("c", nil, time.Minute)

	assert.Equal(t, 2, cache.size())
	_, hasOldest := cache.entries["a"]
	assert.False(t, hasOldest)
}

func TestCacheExpiry(t *testing.T) {
	cache := &specCacheStore{entries: map[string]*cacheEntry{}, maxSize: 2}

	cache.putWithTTL("a", nil, -time.Second)
	assert.Nil(t, cache.get("a"))
	assert.Equal(t, 0, cache.size())
}

func TestMakeCacheKey(t *testing.T) {
	assert.Empty(t, makeCacheKey(specInput{}))
	assert.Empty(t, makeCacheKey(specInput{File: filepath.Join(t.TempDir(), "missing.yaml")}))

	key := makeCacheKey(specInput{Content: "openapi: 3.0.0"})
	assert.Contains(t, key, "content:")
	assert.Equal(t, key, makeCacheKey(specInput{Content: "openapi: 3.0.0"}))
}
