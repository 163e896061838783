package sync

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShardedMapGetAndUpdate(t *testing.T) {
	m := NewShardedMap[int]()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	got := m.Update("attempts", func(current int, exists bool) (int, bool) {
		assert.False(t, exists)
		return current + 1, true
	})
	assert.Equal(t, 1, got)

	v, ok := m.Get("attempts")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	m.Update("attempts", func(int, bool) (int, bool) { return 0, false })
	_, ok = m.Get("attempts")
	assert.False(t, ok, "keep=false deletes the key")
}

func TestShardedMapEmptyKey(t *testing.T) {
	m := NewShardedMap[string]()
	m.Update("", func(string, bool) (string, bool) { return "x", true })

	v, ok := m.Get("")
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, 0, shardIndex(""))
}

func TestShardedMapSameKeySerializes(t *testing.T) {
	m := NewShardedMap[int]()
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			m.Update("same-key", func(current int, _ bool) (int, bool) { return current + 1, true })
		})
	}
	wg.Wait()

	v, _ := m.Get("same-key")
	assert.Equal(t, 100, v)
}

func TestShardedMapDeleteFuncAndLen(t *testing.T) {
	m := NewShardedMap[int]()
	for i := range 50 {
		m.Update(fmt.Sprintf("key-%d", i), func(int, bool) (int, bool) { return i, true })
	}
	require.Equal(t, 50, m.Len())

	removed := m.DeleteFunc(func(_ string, v int) bool { return v%2 == 0 })
	assert.Equal(t, 25, removed)
	assert.Equal(t, 25, m.Len())

	m.Delete("key-1")
	assert.Equal(t, 24, m.Len())
}

func TestShardDistribution(t *testing.T) {
	shards := make(map[int]bool)
	for i := range 100 {
		shards[shardIndex(fmt.Sprintf("login:%d:10.0.0.%d", i, i))] = true
	}
	assert.Greater(t, len(shards), 10, "keys should spread across shards")
}
