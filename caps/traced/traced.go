// Package traced decorates any representation with structured logs. The
// wrapped value delegates every capability to the inner one unchanged, so
// payloads stay the inner representation's payloads and the inner run
// functions still apply. Wrapping changes what you can observe, never what
// the computation means.
package traced

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/cap_able_go/caps"
)

// sequencer logs sequencing against one scope id and delegates to inner.
type sequencer struct {
	inner caps.Sequencer
	log   *zap.Logger
	scope string
}

func newSequencer(inner caps.Sequencer, logger *zap.Logger) sequencer {
	s := sequencer{
		inner: inner,
		log:   logger,
		scope: fmt.Sprintf("traced_%s", uuid.New().String()),
	}
	s.log.Debug("traced scope opened",
		zap.String("scope_id", s.scope),
		zap.String("inner", fmt.Sprintf("%T", inner)),
		zap.Any("at", Now()),
	)
	return s
}

// Wrap decorates a Sequencer.
func Wrap(inner caps.Sequencer, logger *zap.Logger) caps.Sequencer {
	return newSequencer(inner, logger)
}

// WrapStateful decorates a Stateful.
func WrapStateful(inner caps.Stateful, logger *zap.Logger) caps.Stateful {
	return stateful{sequencer: newSequencer(inner, logger), st: inner}
}

// WrapRaiser decorates a Raiser.
func WrapRaiser(inner caps.Raiser, logger *zap.Logger) caps.Raiser {
	return raiser{sequencer: newSequencer(inner, logger), rs: inner}
}

// WrapStatefulRaiser decorates a full StatefulRaiser.
func WrapStatefulRaiser(inner caps.StatefulRaiser, logger *zap.Logger) caps.StatefulRaiser {
	return statefulRaiser{
		stateful: stateful{sequencer: newSequencer(inner, logger), st: inner},
		rs:       inner,
	}
}

func (t sequencer) Pure(v caps.Erased) caps.Erased {
	t.log.Debug("pure",
		zap.String("scope_id", t.scope),
		zap.String("value", fmt.Sprintf("%T", v)),
	)
	return t.inner.Pure(v)
}

func (t sequencer) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	return t.inner.Chain(m, func(v caps.Erased) caps.Erased {
		from := time.Now()
		out := f(v)
		span := NewTimeSpan(from, time.Now())
		t.log.Debug("chain step",
			zap.String("scope_id", t.scope),
			zap.Duration("took", span.Duration()),
		)
		return out
	})
}

func (t sequencer) stateVia(st caps.Stateful) caps.Erased {
	t.log.Debug("state read", zap.String("scope_id", t.scope))
	return st.State()
}

func (t sequencer) modifyVia(st caps.Stateful, f func(caps.Erased) caps.Erased) caps.Erased {
	return st.ModifyState(func(s caps.Erased) caps.Erased {
		from := time.Now()
		next := f(s)
		span := NewTimeSpan(from, time.Now())
		t.log.Debug("state modify",
			zap.String("scope_id", t.scope),
			zap.Duration("took", span.Duration()),
		)
		return next
	})
}

func (t sequencer) raiseVia(rs caps.Raiser, err error) caps.Erased {
	t.log.Debug("raise",
		zap.String("scope_id", t.scope),
		zap.Error(err),
	)
	return rs.Raise(err)
}

type stateful struct {
	sequencer
	st caps.Stateful
}

func (t stateful) State() caps.Erased {
	return t.stateVia(t.st)
}

func (t stateful) ModifyState(f func(caps.Erased) caps.Erased) caps.Erased {
	return t.modifyVia(t.st, f)
}

type raiser struct {
	sequencer
	rs caps.Raiser
}

func (t raiser) Raise(err error) caps.Erased {
	return t.raiseVia(t.rs, err)
}

type statefulRaiser struct {
	stateful
	rs caps.Raiser
}

func (t statefulRaiser) Raise(err error) caps.Erased {
	return t.raiseVia(t.rs, err)
}

var (
	_ caps.Sequencer      = sequencer{}
	_ caps.Stateful       = stateful{}
	_ caps.Raiser         = raiser{}
	_ caps.StatefulRaiser = statefulRaiser{}
)
