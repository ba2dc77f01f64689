// Package fallible is the failure representation: a computation of A either
// carries an A or carries the error that aborted it. Once an error is in
// flight, later chain steps are skipped.
package fallible

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

const reprName = "fallible"

// outcome is the erased payload. Exactly one of err and val is meaningful;
// err != nil marks the failed case.
type outcome struct {
	err error
	val caps.Erased
}

// Repr provides sequencing and failure.
type Repr struct{}

var _ caps.Raiser = Repr{}

func (Repr) Pure(v caps.Erased) caps.Erased {
	return outcome{val: v}
}

func (Repr) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	o := helper.MustRepValue[outcome](reprName, m)
	if o.err != nil {
		return o
	}
	return f(o.val)
}

func (Repr) Raise(err error) caps.Erased {
	return outcome{err: err}
}

// Run peels a fallible computation into the produced value or the error that
// aborted it. On error the value is the zero of A.
func Run[A any](m caps.Comp[A]) (A, error) {
	o := helper.MustRepValue[outcome](reprName, m.Raw)
	if o.err != nil {
		var zero A
		return zero, o.err
	}
	return helper.OrZero[A](o.val), nil
}

// Recover resumes a failed computation with the handler's result; a
// successful m passes through untouched. This observes the error without
// peeling, so the result stays a computation.
func Recover[A any](m caps.Comp[A], handler func(error) caps.Comp[A]) caps.Comp[A] {
	o := helper.MustRepValue[outcome](reprName, m.Raw)
	if o.err != nil {
		return handler(o.err)
	}
	return m
}
