package kvstore

import (
	"fmt"

	"github.com/on-the-ground/cap_able_go/caps"
)

// strict is the stateful store with one extra rule: deleting an absent key
// is a domain error. That rule needs both state and failure, so the
// constructor demands the full capability set.
type strict[K comparable, V any] struct {
	stateful[K, V]
	fx caps.StatefulRaiser
}

// NewStrict returns a stateful store whose Delete raises ErrNoSuchKey,
// wrapped with the offending key, when the key is absent.
func NewStrict[K comparable, V any](fx caps.StatefulRaiser) Store[K, V] {
	return strict[K, V]{stateful: stateful[K, V]{fx: fx}, fx: fx}
}

func (st strict[K, V]) Delete(key K) caps.Comp[caps.Unit] {
	return caps.Chain(st.fx, st.Get(key), func(got caps.Option[V]) caps.Comp[caps.Unit] {
		if got.IsNone() {
			return caps.Raise[caps.Unit](st.fx, fmt.Errorf("%w: %v", ErrNoSuchKey, key))
		}
		return st.stateful.Delete(key)
	})
}
