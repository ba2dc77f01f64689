package stacked

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/caps/fallible"
	"github.com/on-the-ground/cap_able_go/caps/threaded"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

// Peeled is the reified failure layer: the error a computation raised, or
// its value when Err is nil.
type Peeled[A any] struct {
	Value A
	Err   error
}

// Pair is the reified state layer: the final state alongside the value.
type Pair[S, A any] struct {
	State S
	Value A
}

// PeelFallible removes the failure layer from a FallibleOver computation.
// The result runs in the inner representation and produces a Peeled, so
// inner effects are still pending and the caller finishes the job with the
// inner run function.
func PeelFallible[A any](inner caps.Sequencer, m caps.Comp[A]) caps.Comp[Peeled[A]] {
	raw := inner.Chain(m.Raw, func(o caps.Erased) caps.Erased {
		out := helper.MustRepValue[outcome](fallibleOverName, o)
		if out.err != nil {
			return inner.Pure(Peeled[A]{Err: out.err})
		}
		return inner.Pure(Peeled[A]{Value: helper.OrZero[A](out.val)})
	})
	return caps.Comp[Peeled[A]]{Raw: raw}
}

// PeelThreaded removes the state layer from a ThreadedOver computation by
// applying the initial state. The result runs in the inner representation
// and produces a Pair; inner effects are still pending.
func PeelThreaded[S, A any](inner caps.Sequencer, m caps.Comp[A], initial S) caps.Comp[Pair[S, A]] {
	fn := helper.MustRepValue[tstep](threadedOverName, m.Raw)
	raw := inner.Chain(fn(initial), func(p caps.Erased) caps.Erased {
		pr := helper.MustRepValue[pair](threadedOverName, p)
		return inner.Pure(Pair[S, A]{
			State: helper.OrZero[S](pr.state),
			Value: helper.OrZero[A](pr.val),
		})
	})
	return caps.Comp[Pair[S, A]]{Raw: raw}
}

// RunFallibleOverThreaded peels a computation built against
// NewFallibleOverStateful(threaded.Repr{}). The failure layer sits on top,
// so the threaded state underneath survives a raise: the returned state is
// meaningful even when err is non-nil, and reflects every ModifyState that
// ran before the failure.
func RunFallibleOverThreaded[S, A any](m caps.Comp[A], initial S) (A, S, error) {
	peeled := PeelFallible[A](threaded.Repr{}, m)
	res, final := threaded.Run(peeled, initial)
	return res.Value, final, res.Err
}

// RunThreadedOverFallible peels a computation built against
// NewThreadedOverRaiser(fallible.Repr{}). The state layer sits on top of the
// failure layer, so a raise abandons the in-flight state: on error both the
// value and the state are zero, no matter how many ModifyState steps ran
// first.
//
// The two run functions take the same arguments and return the same shape.
// Which stack a computation was built against is the whole difference, and
// it decides whether state outlives failure.
func RunThreadedOverFallible[S, A any](m caps.Comp[A], initial S) (A, S, error) {
	peeled := PeelThreaded[S, A](fallible.Repr{}, m, initial)
	pr, err := fallible.Run(peeled)
	if err != nil {
		var zeroA A
		var zeroS S
		return zeroA, zeroS, err
	}
	return pr.Value, pr.State, nil
}
