package kvstore

import (
	"github.com/on-the-ground/cap_able_go/caps"
)

// direct keeps its data in an injected backing cell and only needs
// sequencing: operations suspend the mutation into the computation, so it
// runs when the representation executes the step.
type direct[K comparable, V any] struct {
	fx      caps.Sequencer
	backing Backing[K, V]
}

// NewDirect returns a store over a mutable backing. Any representation will
// do, which is the point: the same store runs under identity, threaded, or a
// traced wrapper without changing.
func NewDirect[K comparable, V any](fx caps.Sequencer, backing Backing[K, V]) Store[K, V] {
	return direct[K, V]{fx: fx, backing: backing}
}

func (d direct[K, V]) Put(key K, value V) caps.Comp[caps.Unit] {
	return caps.Suspend(d.fx, func() caps.Unit {
		d.backing.Set(key, value)
		return caps.Unit{}
	})
}

func (d direct[K, V]) Get(key K) caps.Comp[caps.Option[V]] {
	return caps.Suspend(d.fx, func() caps.Option[V] {
		v, ok := d.backing.Get(key)
		if !ok {
			return caps.None[V]()
		}
		return caps.Some(v)
	})
}

func (d direct[K, V]) Delete(key K) caps.Comp[caps.Unit] {
	return caps.Suspend(d.fx, func() caps.Unit {
		d.backing.Delete(key)
		return caps.Unit{}
	})
}

// lookup bundles one fallible read so it can cross the suspension as a
// single value.
type lookup[V any] struct {
	val V
	ok  bool
	err error
}

// directRaising is the direct store over storage that can fail: backing
// errors become raised computations instead of panics or swallowed values.
type directRaising[K comparable, V any] struct {
	fx      caps.Raiser
	backing FallibleBacking[K, V]
}

// NewDirectRaising returns a store over fallible storage. It demands a
// Raiser; handing it a representation without failure is a compile error.
func NewDirectRaising[K comparable, V any](fx caps.Raiser, backing FallibleBacking[K, V]) Store[K, V] {
	return directRaising[K, V]{fx: fx, backing: backing}
}

func (d directRaising[K, V]) Put(key K, value V) caps.Comp[caps.Unit] {
	return caps.Chain(d.fx, caps.Suspend(d.fx, func() error {
		return d.backing.Set(key, value)
	}), func(err error) caps.Comp[caps.Unit] {
		if err != nil {
			return caps.Raise[caps.Unit](d.fx, err)
		}
		return caps.Pure(d.fx, caps.Unit{})
	})
}

func (d directRaising[K, V]) Get(key K) caps.Comp[caps.Option[V]] {
	return caps.Chain(d.fx, caps.Suspend(d.fx, func() lookup[V] {
		v, ok, err := d.backing.Get(key)
		return lookup[V]{val: v, ok: ok, err: err}
	}), func(l lookup[V]) caps.Comp[caps.Option[V]] {
		if l.err != nil {
			return caps.Raise[caps.Option[V]](d.fx, l.err)
		}
		if !l.ok {
			return caps.Pure(d.fx, caps.None[V]())
		}
		return caps.Pure(d.fx, caps.Some(l.val))
	})
}

func (d directRaising[K, V]) Delete(key K) caps.Comp[caps.Unit] {
	return caps.Chain(d.fx, caps.Suspend(d.fx, func() error {
		return d.backing.Delete(key)
	}), func(err error) caps.Comp[caps.Unit] {
		if err != nil {
			return caps.Raise[caps.Unit](d.fx, err)
		}
		return caps.Pure(d.fx, caps.Unit{})
	})
}
