// Package threaded is the state-threading representation: a computation of A
// is a function from a state to the next state and an A. Building a
// computation does no work; Run applies it to an initial state.
package threaded

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

const reprName = "threaded"

// step is the erased payload: one state transition producing a value.
type step func(state caps.Erased) (caps.Erased, caps.Erased)

// Repr provides sequencing and state access by weaving the state through
// every step.
type Repr struct{}

var _ caps.Stateful = Repr{}

func (Repr) Pure(v caps.Erased) caps.Erased {
	return step(func(s caps.Erased) (caps.Erased, caps.Erased) {
		return s, v
	})
}

func (Repr) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	first := helper.MustRepValue[step](reprName, m)
	return step(func(s caps.Erased) (caps.Erased, caps.Erased) {
		s1, v := first(s)
		next := helper.MustRepValue[step](reprName, f(v))
		return next(s1)
	})
}

func (Repr) State() caps.Erased {
	return step(func(s caps.Erased) (caps.Erased, caps.Erased) {
		return s, s
	})
}

func (Repr) ModifyState(f func(caps.Erased) caps.Erased) caps.Erased {
	return step(func(s caps.Erased) (caps.Erased, caps.Erased) {
		return f(s), caps.Unit{}
	})
}

// Run applies m to the initial state, returning the produced value and the
// final state. Each call threads its own state; runs never observe each
// other.
func Run[S, A any](m caps.Comp[A], initial S) (A, S) {
	fn := helper.MustRepValue[step](reprName, m.Raw)
	s, v := fn(initial)
	return helper.OrZero[A](v), helper.OrZero[S](s)
}

// Eval runs m and keeps only the value.
func Eval[S, A any](m caps.Comp[A], initial S) A {
	v, _ := Run(m, initial)
	return v
}

// Exec runs m and keeps only the final state.
func Exec[S, A any](m caps.Comp[A], initial S) S {
	_, s := Run(m, initial)
	return s
}
