package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("a", 1)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := New(10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestEvictionAtCapacity(t *testing.T) {
	c := New(3, time.Minute)

	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	// Oldest entry is evicted once capacity is exceeded.
	_, ok := c.Get("k0")
	assert.False(t, ok)

	v, ok := c.Get("k3")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestDelete(t *testing.T) {
	c := New(10, time.Minute)

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCleanExpired(t *testing.T) {
	c := New(10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	c.CleanExpired()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.items)
	assert.Zero(t, c.evictList.Len())
}
