// Package identity is the no-effect representation: a computation of A is
// the value A itself. Chaining applies continuations immediately, which
// makes it the strict baseline the other representations are measured
// against.
package identity

import (
	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/shared/helper"
)

// Repr provides sequencing and nothing else.
type Repr struct{}

var _ caps.Sequencer = Repr{}

func (Repr) Pure(v caps.Erased) caps.Erased { return v }

func (Repr) Chain(m caps.Erased, f func(caps.Erased) caps.Erased) caps.Erased {
	return f(m)
}

// Run peels an identity computation to its value.
func Run[A any](m caps.Comp[A]) A {
	return helper.OrZero[A](m.Raw)
}
