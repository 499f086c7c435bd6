package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteLen(b []byte) int64 { return int64(len(b)) }

func TestGetSet(t *testing.T) {
	c := New[string, int](0, nil)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 3)
	v, _ = c.Get("a")
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, c.Len())
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, []byte](10, byteLen)

	c.Set(1, make([]byte, 4))
	c.Set(2, make([]byte, 4))
	_, _ = c.Get(1) // 2 is now the oldest
	c.Set(3, make([]byte, 4))

	_, ok := c.Get(2)
	assert.False(t, ok, "entry 2 should be evicted")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)

	s := c.Stats()
	assert.Equal(t, int64(8), s.Used)
	assert.Equal(t, uint64(1), s.Evictions)
}

func TestOversizedValueNotStored(t *testing.T) {
	c := New[int, []byte](10, byteLen)
	c.Set(1, make([]byte, 4))
	c.Set(2, make([]byte, 11))

	_, ok := c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
}

func TestReplaceAdjustsUsage(t *testing.T) {
	c := New[int, []byte](0, byteLen)
	c.Set(1, make([]byte, 8))
	c.Set(1, make([]byte, 2))
	assert.Equal(t, int64(2), c.Stats().Used)
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int, int](0, nil)
	c.Set(1, 1)
	c.Set(2, 2)

	assert.True(t, c.Delete(1))
	assert.False(t, c.Delete(1))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Stats().Used)
}

func TestStatsHitRate(t *testing.T) {
	c := New[int, int](0, nil)
	c.Set(1, 1)
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 0.5, s.HitRate, 1e-9)
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](64, nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Set(g*1000+i, i)
				c.Get(g*1000 + i/2)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
