package caps

import (
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

// Pure lifts a plain value into fx's representation.
func Pure[A any](fx Sequencer, v A) Comp[A] {
	return Comp[A]{Raw: fx.Pure(v)}
}

// Chain sequences m with a dependent continuation. The continuation receives
// the value produced by m, whenever the representation decides to produce it.
func Chain[A, B any](fx Sequencer, m Comp[A], f func(A) Comp[B]) Comp[B] {
	return Comp[B]{Raw: fx.Chain(m.Raw, func(v Erased) Erased {
		return f(helper.OrZero[A](v)).Raw
	})}
}

// Map applies a plain function to the produced value.
func Map[A, B any](fx Sequencer, m Comp[A], f func(A) B) Comp[B] {
	return Chain(fx, m, func(v A) Comp[B] {
		return Pure(fx, f(v))
	})
}

// Then sequences two computations, discarding the first value.
func Then[A, B any](fx Sequencer, m Comp[A], next Comp[B]) Comp[B] {
	return Chain(fx, m, func(A) Comp[B] {
		return next
	})
}

// Suspend delays an impure thunk into a computation. The thunk runs when the
// chain step executes: immediately for strict representations such as
// identity, at run time for deferred ones such as threaded.
func Suspend[A any](fx Sequencer, thunk func() A) Comp[A] {
	return Chain(fx, Pure(fx, Unit{}), func(Unit) Comp[A] {
		return Pure(fx, thunk())
	})
}

// GetState yields the current state.
func GetState[S any](fx Stateful) Comp[S] {
	return Comp[S]{Raw: fx.State()}
}

// ModifyState replaces the state with f(current).
func ModifyState[S any](fx Stateful, f func(S) S) Comp[Unit] {
	return Comp[Unit]{Raw: fx.ModifyState(func(s Erased) Erased {
		return f(helper.OrZero[S](s))
	})}
}

// PutState replaces the state unconditionally.
func PutState[S any](fx Stateful, s S) Comp[Unit] {
	return ModifyState(fx, func(S) S { return s })
}

// InspectState yields a projection of the current state without changing it.
func InspectState[S, A any](fx Stateful, f func(S) A) Comp[A] {
	return Map(fx, GetState[S](fx), f)
}

// Raise produces a failed computation of any result type. Steps chained
// after it do not run.
func Raise[A any](fx Raiser, err error) Comp[A] {
	return Comp[A]{Raw: fx.Raise(err)}
}
