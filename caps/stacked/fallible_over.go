package stacked

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

const fallibleOverName = "stacked.FallibleOver"

// outcome is the erased payload of the failure layer, carried inside inner
// computations. err != nil marks the failed case.
type outcome struct {
	err error
	val caps.Erased
}

// FallibleOver layers failure onto an arbitrary inner representation: a
// computation of A is an inner computation of ok-or-error. A raise is an
// inner computation that already holds the error; chaining onto it skips the
// continuation but still runs inside the inner representation.
type FallibleOver struct {
	inner caps.Sequencer
}

// NewFallibleOver wraps inner with the failure layer.
func NewFallibleOver(inner caps.Sequencer) FallibleOver {
	return FallibleOver{inner: inner}
}

var _ caps.Raiser = FallibleOver{}

func (r FallibleOver) Pure(v caps.Erased) caps.Erased {
	return r.inner.Pure(outcome{val: v})
}

func (r FallibleOver) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	return r.inner.Chain(m, func(o caps.Erased) caps.Erased {
		out := helper.MustRepValue[outcome](fallibleOverName, o)
		if out.err != nil {
			return r.inner.Pure(out)
		}
		return f(out.val)
	})
}

func (r FallibleOver) Raise(err error) caps.Erased {
	return r.inner.Pure(outcome{err: err})
}

// Lift embeds one inner computation into the layered one by marking its
// value as a success. Inner effects run as they would have; the failure
// layer merely passes over them.
func (r FallibleOver) Lift(m caps.Erased) caps.Erased {
	return r.inner.Chain(m, func(v caps.Erased) caps.Erased {
		return r.inner.Pure(outcome{val: v})
	})
}

// FallibleOverStateful is FallibleOver for stateful inners: the inner state
// capability is lifted through the failure layer one step at a time. State
// reached before a raise therefore survives it; the run functions in peel.go
// expose that.
type FallibleOverStateful struct {
	FallibleOver
	st caps.Stateful
}

// NewFallibleOverStateful wraps a stateful inner with the failure layer.
func NewFallibleOverStateful(inner caps.Stateful) FallibleOverStateful {
	return FallibleOverStateful{
		FallibleOver: FallibleOver{inner: inner},
		st:           inner,
	}
}

var _ caps.StatefulRaiser = FallibleOverStateful{}

func (r FallibleOverStateful) State() caps.Erased {
	return r.Lift(r.st.State())
}

func (r FallibleOverStateful) ModifyState(f func(caps.Erased) caps.Erased) caps.Erased {
	return r.Lift(r.st.ModifyState(f))
}
