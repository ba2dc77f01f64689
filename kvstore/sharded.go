package kvstore

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shard is one lock-guarded partition of a sharded map.
type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// shardedMap is an in-memory Backing partitioned by key hash, safe for
// concurrent use from many goroutines.
type shardedMap[K comparable, V any] struct {
	shards []*shard[K, V]
}

// NewShardedMap returns an in-memory Backing with the given number of
// partitions. Counts below one are clamped to one.
func NewShardedMap[K comparable, V any](numShards int) Backing[K, V] {
	if numShards < 1 {
		numShards = 1
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return shardedMap[K, V]{shards: shards}
}

func (sm shardedMap[K, V]) shardOf(key K) *shard[K, V] {
	switch len(sm.shards) {
	case 1:
		return sm.shards[0]
	default:
		idx := xxhash.Sum64String(fmt.Sprintf("%v", key)) % uint64(len(sm.shards))
		return sm.shards[idx]
	}
}

func (sm shardedMap[K, V]) Get(key K) (V, bool) {
	s := sm.shardOf(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (sm shardedMap[K, V]) Set(key K, value V) {
	s := sm.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (sm shardedMap[K, V]) Delete(key K) {
	s := sm.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
