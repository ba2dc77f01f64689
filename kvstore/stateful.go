package kvstore

import (
	"maps"

	"github.com/on-the-ground/cap_able_go/caps"
)

// stateful keeps the whole mapping in the threaded state: no cell, no
// mutation, every Put or Delete yields a fresh map.
type stateful[K comparable, V any] struct {
	fx caps.Stateful
}

// NewStateful returns a store whose data is the state itself. It demands a
// Stateful; the state type is map[K]V and the caller provides the initial
// mapping when running (nil is an empty store).
func NewStateful[K comparable, V any](fx caps.Stateful) Store[K, V] {
	return stateful[K, V]{fx: fx}
}

func (st stateful[K, V]) Put(key K, value V) caps.Comp[caps.Unit] {
	return caps.ModifyState(st.fx, func(m map[K]V) map[K]V {
		next := cloned(m)
		next[key] = value
		return next
	})
}

func (st stateful[K, V]) Get(key K) caps.Comp[caps.Option[V]] {
	return caps.InspectState(st.fx, func(m map[K]V) caps.Option[V] {
		v, ok := m[key]
		if !ok {
			return caps.None[V]()
		}
		return caps.Some(v)
	})
}

func (st stateful[K, V]) Delete(key K) caps.Comp[caps.Unit] {
	return caps.ModifyState(st.fx, func(m map[K]V) map[K]V {
		if _, ok := m[key]; !ok {
			return m
		}
		next := cloned(m)
		delete(next, key)
		return next
	})
}

// cloned copies the mapping before a write. Earlier states captured by other
// steps or runs must never observe a later write through a shared map.
func cloned[K comparable, V any](m map[K]V) map[K]V {
	next := maps.Clone(m)
	if next == nil {
		next = make(map[K]V)
	}
	return next
}
