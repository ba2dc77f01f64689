package stacked

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

const threadedOverName = "stacked.ThreadedOver"

// tstep is the erased payload of the state layer: given the current state,
// produce an inner computation of pair.
type tstep func(state caps.Erased) caps.Erased

// pair carries the next state alongside the produced value through the inner
// representation.
type pair struct {
	state caps.Erased
	val   caps.Erased
}

// ThreadedOver layers state threading onto an arbitrary inner
// representation: a computation of A is a function from a state to an inner
// computation of (state, A). Inner effects decide the fate of the whole
// step, so an inner abort takes the threaded state down with it.
type ThreadedOver struct {
	inner caps.Sequencer
}

// NewThreadedOver wraps inner with the state layer.
func NewThreadedOver(inner caps.Sequencer) ThreadedOver {
	return ThreadedOver{inner: inner}
}

var _ caps.Stateful = ThreadedOver{}

func (r ThreadedOver) Pure(v caps.Erased) caps.Erased {
	return tstep(func(s caps.Erased) caps.Erased {
		return r.inner.Pure(pair{state: s, val: v})
	})
}

func (r ThreadedOver) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	first := helper.MustRepValue[tstep](threadedOverName, m)
	return tstep(func(s caps.Erased) caps.Erased {
		return r.inner.Chain(first(s), func(p caps.Erased) caps.Erased {
			pr := helper.MustRepValue[pair](threadedOverName, p)
			next := helper.MustRepValue[tstep](threadedOverName, f(pr.val))
			return next(pr.state)
		})
	})
}

func (r ThreadedOver) State() caps.Erased {
	return tstep(func(s caps.Erased) caps.Erased {
		return r.inner.Pure(pair{state: s, val: s})
	})
}

func (r ThreadedOver) ModifyState(f func(caps.Erased) caps.Erased) caps.Erased {
	return tstep(func(s caps.Erased) caps.Erased {
		return r.inner.Pure(pair{state: f(s), val: caps.Unit{}})
	})
}

// Lift embeds one inner computation into the layered one, threading the
// current state past it unchanged.
func (r ThreadedOver) Lift(m caps.Erased) caps.Erased {
	return tstep(func(s caps.Erased) caps.Erased {
		return r.inner.Chain(m, func(v caps.Erased) caps.Erased {
			return r.inner.Pure(pair{state: s, val: v})
		})
	})
}

// ThreadedOverRaiser is ThreadedOver for raising inners: a raise abandons
// the step function entirely, so no final state exists for a failed run.
type ThreadedOverRaiser struct {
	ThreadedOver
	rs caps.Raiser
}

// NewThreadedOverRaiser wraps a raising inner with the state layer.
func NewThreadedOverRaiser(inner caps.Raiser) ThreadedOverRaiser {
	return ThreadedOverRaiser{
		ThreadedOver: ThreadedOver{inner: inner},
		rs:           inner,
	}
}

var _ caps.StatefulRaiser = ThreadedOverRaiser{}

func (r ThreadedOverRaiser) Raise(err error) caps.Erased {
	return tstep(func(caps.Erased) caps.Erased {
		return r.rs.Raise(err)
	})
}
