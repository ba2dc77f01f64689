package kvstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/cap_able_go/kvstore"
	"github.com/stretchr/testify/require"
)

func TestShardedMap_BasicOps(t *testing.T) {
	for _, numShards := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("shards=%d", numShards), func(t *testing.T) {
			m := kvstore.NewShardedMap[string, int](numShards)

			_, ok := m.Get("alpha")
			require.False(t, ok)

			m.Set("alpha", 1)
			v, ok := m.Get("alpha")
			require.True(t, ok)
			require.Equal(t, 1, v)

			m.Set("alpha", 2)
			v, _ = m.Get("alpha")
			require.Equal(t, 2, v)

			m.Delete("alpha")
			_, ok = m.Get("alpha")
			require.False(t, ok)
		})
	}
}

func TestShardedMap_ClampsShardCount(t *testing.T) {
	m := kvstore.NewShardedMap[string, int](0)
	m.Set("alpha", 1)
	v, ok := m.Get("alpha")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestShardedMap_AllKeysRetrievable(t *testing.T) {
	m := kvstore.NewShardedMap[int, string](16)
	for i := 0; i < 1000; i++ {
		m.Set(i, fmt.Sprintf("value-%d", i))
	}
	for i := 0; i < 1000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok, "key %d must be retrievable", i)
		require.Equal(t, fmt.Sprintf("value-%d", i), v)
	}
}

func TestShardedMap_ConcurrentWriters(t *testing.T) {
	m := kvstore.NewShardedMap[int, int](8)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := w*200 + i
				m.Set(key, key)
				if v, ok := m.Get(key); !ok || v != key {
					t.Errorf("lost write for key %d", key)
				}
			}
		}(w)
	}
	wg.Wait()

	for key := 0; key < 8*200; key++ {
		v, ok := m.Get(key)
		require.True(t, ok)
		require.Equal(t, key, v)
	}
}
