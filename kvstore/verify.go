package kvstore

import (
	"github.com/on-the-ground/cap_able_go/caps"
)

// Verify stores value under key, reads it back, and yields whether the
// round trip observed exactly the stored value. The logic is written once
// against Sequencer; which store variant and which representation execute
// it is entirely the caller's choice.
func Verify[K, V comparable](fx caps.Sequencer, store Store[K, V], key K, value V) caps.Comp[bool] {
	return caps.Chain(fx, store.Put(key, value), func(caps.Unit) caps.Comp[bool] {
		return caps.Map(fx, store.Get(key), func(got caps.Option[V]) bool {
			stored, ok := got.Get()
			return ok && stored == value
		})
	})
}
