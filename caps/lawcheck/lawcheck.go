// Package lawcheck runs randomized law checks against a representation.
// Each check takes the capability value under test plus a peel function that
// turns a computation into comparable plain values, so one harness covers
// every representation, base or stacked or wrapped.
//
// The loops are deterministic: a fixed seed drives a PCG source, and a
// failure message carries the inputs that broke the law.
package lawcheck

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/cap_able_go/caps"
)

// Sequencing checks the chain laws: left identity, right identity,
// associativity. Any representation must pass with any lawful peel.
func Sequencing(t *testing.T, opts Options, fx caps.Sequencer, peel func(caps.Comp[int]) int) {
	t.Helper()
	opts = opts.normalized()
	rng := rand.New(rand.NewPCG(opts.Seed, 0))

	adding := func(p int) func(int) caps.Comp[int] {
		return func(v int) caps.Comp[int] { return caps.Pure(fx, v+p) }
	}
	scaling := func(q int) func(int) caps.Comp[int] {
		return func(v int) caps.Comp[int] { return caps.Pure(fx, v*q) }
	}

	for i := 0; i < opts.Iterations; i++ {
		a := rng.IntN(2000) - 1000
		p := rng.IntN(200) - 100
		q := rng.IntN(20) - 10

		f := adding(p)
		g := scaling(q)

		require.Equal(t,
			peel(f(a)),
			peel(caps.Chain(fx, caps.Pure(fx, a), f)),
			"left identity (a=%d, p=%d)", a, p)

		m := caps.Chain(fx, caps.Pure(fx, a), f)
		require.Equal(t,
			peel(m),
			peel(caps.Chain(fx, m, func(v int) caps.Comp[int] { return caps.Pure(fx, v) })),
			"right identity (a=%d, p=%d)", a, p)

		require.Equal(t,
			peel(caps.Chain(fx, caps.Chain(fx, m, f), g)),
			peel(caps.Chain(fx, m, func(v int) caps.Comp[int] { return caps.Chain(fx, f(v), g) })),
			"associativity (a=%d, p=%d, q=%d)", a, p, q)
	}
}

// Raising checks failure semantics: pure computations peel without error, a
// raise surfaces its error, and chain steps after a raise never run.
func Raising(t *testing.T, opts Options, fx caps.Raiser, peel func(caps.Comp[int]) (int, error)) {
	t.Helper()
	opts = opts.normalized()
	rng := rand.New(rand.NewPCG(opts.Seed, 1))
	errBoom := errors.New("boom")

	for i := 0; i < opts.Iterations; i++ {
		a := rng.IntN(1000)

		v, err := peel(caps.Pure(fx, a))
		require.NoError(t, err, "pure must not fail (a=%d)", a)
		require.Equal(t, a, v, "pure must keep its value (a=%d)", a)

		calls := 0
		_, err = peel(caps.Chain(fx, caps.Raise[int](fx, errBoom), func(v int) caps.Comp[int] {
			calls++
			return caps.Pure(fx, v+1)
		}))
		require.ErrorIs(t, err, errBoom, "raise must surface its error")
		require.Zero(t, calls, "steps chained after a raise must not run")

		_, err = peel(caps.Chain(fx, caps.Pure(fx, a), func(int) caps.Comp[int] {
			return caps.Raise[int](fx, errBoom)
		}))
		require.ErrorIs(t, err, errBoom, "raise after a success must surface its error")
	}
}

// Threading checks state semantics: a get after a modify observes the new
// state, the final state matches the last modify, and repeated runs from the
// same initial state agree (runs share nothing).
func Threading(t *testing.T, opts Options, fx caps.Stateful, peel func(m caps.Comp[int], initial int) (value, final int)) {
	t.Helper()
	opts = opts.normalized()
	rng := rand.New(rand.NewPCG(opts.Seed, 2))

	for i := 0; i < opts.Iterations; i++ {
		initial := rng.IntN(1000)
		delta := rng.IntN(100) + 1

		comp := caps.Chain(fx,
			caps.ModifyState(fx, func(s int) int { return s + delta }),
			func(caps.Unit) caps.Comp[int] { return caps.GetState[int](fx) })

		v, final := peel(comp, initial)
		require.Equal(t, initial+delta, v, "get after modify must observe the new state")
		require.Equal(t, initial+delta, final, "final state must match the last modify")

		v2, final2 := peel(comp, initial)
		require.Equal(t, v, v2, "repeated runs must agree")
		require.Equal(t, final, final2, "runs must not leak state into each other")

		pv, pf := peel(caps.Chain(fx,
			caps.PutState(fx, delta),
			func(caps.Unit) caps.Comp[int] { return caps.GetState[int](fx) }), initial)
		require.Equal(t, delta, pv, "get after put must observe the put value")
		require.Equal(t, delta, pf, "final state must match the put value")
	}
}
