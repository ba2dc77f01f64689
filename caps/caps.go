package caps

// Erased is the boundary type for values flowing through a representation.
// Each representation decides for itself what an erased computation looks
// like (a plain value, a state transition function, an outcome record), so
// the capability interfaces exchange opaque values and the typed front ends
// in ops.go recover the static types at the edges.
type Erased = any

// Comp is a computation that eventually produces an A when peeled by the
// representation that built it. The phantom parameter keeps user code typed;
// Raw is the representation's own payload and is only meaningful to the
// representation (or its run functions).
//
// A Comp describes work. Nothing observable happens until a run function of
// the owning representation peels it.
type Comp[A any] struct {
	Raw Erased
}

// Sequencer is the minimal capability: injecting values and sequencing
// dependent steps. Every representation provides it.
//
// Implementations must satisfy the usual sequencing laws, checked by
// lawcheck.Sequencing:
//   - Chain(Pure(v), f) behaves as f(v)
//   - Chain(m, Pure) behaves as m
//   - Chain(Chain(m, f), g) behaves as Chain(m, func(v) { return Chain(f(v), g) })
type Sequencer interface {
	Pure(v Erased) Erased
	Chain(m Erased, f func(Erased) Erased) Erased
}

// Stateful extends Sequencer with access to a single mutable-looking state
// cell. State yields the current state as a computation; ModifyState replaces
// it with f(current) and yields Unit.
//
// How the state is carried is the representation's business: the threaded
// representation weaves it through every step, a stacked representation may
// borrow it from an inner one.
type Stateful interface {
	Sequencer

	State() Erased
	ModifyState(f func(Erased) Erased) Erased
}

// Raiser extends Sequencer with failure. Raise produces a computation that
// short-circuits: chain steps after a raise must not run.
type Raiser interface {
	Sequencer

	Raise(err error) Erased
}

// StatefulRaiser is the full capability set. Representations offering both
// state and failure decide how the two interact; see the stacked package for
// the two layerings and their run functions.
type StatefulRaiser interface {
	Stateful
	Raiser
}
