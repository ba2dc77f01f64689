package stacked_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/caps/fallible"
	"github.com/on-the-ground/cap_able_go/caps/identity"
	"github.com/on-the-ground/cap_able_go/caps/lawcheck"
	"github.com/on-the-ground/cap_able_go/caps/stacked"
	"github.com/on-the-ground/cap_able_go/caps/threaded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallibleOverIdentity_Laws(t *testing.T) {
	fx := stacked.NewFallibleOver(identity.Repr{})
	peel := func(m caps.Comp[int]) (int, error) {
		p := identity.Run(stacked.PeelFallible[int](identity.Repr{}, m))
		return p.Value, p.Err
	}

	lawcheck.Sequencing(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) int {
		v, err := peel(m)
		require.NoError(t, err)
		return v
	})
	lawcheck.Raising(t, lawcheck.FromEnv(), fx, peel)
}

func TestThreadedOverIdentity_Laws(t *testing.T) {
	fx := stacked.NewThreadedOver(identity.Repr{})
	peel := func(m caps.Comp[int], initial int) (int, int) {
		p := identity.Run(stacked.PeelThreaded(identity.Repr{}, m, initial))
		return p.Value, p.State
	}

	lawcheck.Sequencing(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) int {
		v, _ := peel(m, 0)
		return v
	})
	lawcheck.Threading(t, lawcheck.FromEnv(), fx, peel)
}

func TestFallibleOverThreaded_Laws(t *testing.T) {
	fx := stacked.NewFallibleOverStateful(threaded.Repr{})

	lawcheck.Sequencing(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) int {
		v, _, err := stacked.RunFallibleOverThreaded(m, 0)
		require.NoError(t, err)
		return v
	})
	lawcheck.Raising(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) (int, error) {
		v, _, err := stacked.RunFallibleOverThreaded(m, 0)
		return v, err
	})
	lawcheck.Threading(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int], initial int) (int, int) {
		v, s, err := stacked.RunFallibleOverThreaded(m, initial)
		require.NoError(t, err)
		return v, s
	})
}

func TestThreadedOverFallible_Laws(t *testing.T) {
	fx := stacked.NewThreadedOverRaiser(fallible.Repr{})

	lawcheck.Sequencing(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) int {
		v, _, err := stacked.RunThreadedOverFallible(m, 0)
		require.NoError(t, err)
		return v
	})
	lawcheck.Raising(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int]) (int, error) {
		v, _, err := stacked.RunThreadedOverFallible(m, 0)
		return v, err
	})
	lawcheck.Threading(t, lawcheck.FromEnv(), fx, func(m caps.Comp[int], initial int) (int, int) {
		v, s, err := stacked.RunThreadedOverFallible(m, initial)
		require.NoError(t, err)
		return v, s
	})
}

// One program, two stacks. The capability set is identical; only the layer
// order differs.
func failingProgram(fx caps.StatefulRaiser, errBoom error) caps.Comp[int] {
	return caps.Chain(fx,
		caps.ModifyState(fx, func(n int) int { return n + 1 }),
		func(caps.Unit) caps.Comp[int] {
			return caps.Chain(fx,
				caps.ModifyState(fx, func(n int) int { return n + 10 }),
				func(caps.Unit) caps.Comp[int] {
					return caps.Raise[int](fx, errBoom)
				})
		})
}

func TestStacking_FailureOverState_StateSurvivesRaise(t *testing.T) {
	errBoom := errors.New("boom")
	m := failingProgram(stacked.NewFallibleOverStateful(threaded.Repr{}), errBoom)

	v, s, err := stacked.RunFallibleOverThreaded(m, 0)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 11, s, "modifications before the raise stay observable")
	require.Zero(t, v)
}

func TestStacking_StateOverFailure_RaiseDiscardsState(t *testing.T) {
	errBoom := errors.New("boom")
	m := failingProgram(stacked.NewThreadedOverRaiser(fallible.Repr{}), errBoom)

	v, s, err := stacked.RunThreadedOverFallible(m, 0)
	require.ErrorIs(t, err, errBoom)
	require.Zero(t, s, "a failed run has no final state")
	require.Zero(t, v)
}

func TestStacking_OrdersAgreeWithoutFailure(t *testing.T) {
	program := func(fx caps.StatefulRaiser) caps.Comp[int] {
		return caps.Chain(fx,
			caps.ModifyState(fx, func(n int) int { return n + 5 }),
			func(caps.Unit) caps.Comp[int] {
				return caps.InspectState(fx, func(n int) int { return n * 2 })
			})
	}

	v1, s1, err1 := stacked.RunFallibleOverThreaded(
		program(stacked.NewFallibleOverStateful(threaded.Repr{})), 2)
	v2, s2, err2 := stacked.RunThreadedOverFallible(
		program(stacked.NewThreadedOverRaiser(fallible.Repr{})), 2)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, v1, v2, "without a raise the orders are indistinguishable")
	require.Equal(t, s1, s2)
	require.Equal(t, 14, v1)
	require.Equal(t, 7, s1)
}

func TestLift_EmbedsInnerComputation(t *testing.T) {
	fx := stacked.NewFallibleOverStateful(threaded.Repr{})
	lifted := caps.Comp[int]{Raw: fx.Lift(threaded.Repr{}.State())}

	v, s, err := stacked.RunFallibleOverThreaded(lifted, 9)
	require.NoError(t, err)
	require.Equal(t, 9, v, "the inner state read becomes the layered value")
	require.Equal(t, 9, s)
}

func TestPeel_ForeignValuePanics(t *testing.T) {
	foreign := caps.Pure(fallible.Repr{}, 3)
	assert.Panics(t, func() {
		stacked.RunFallibleOverThreaded(foreign, 0)
	})

	alsoForeign := caps.Pure(threaded.Repr{}, 3)
	assert.Panics(t, func() {
		stacked.RunThreadedOverFallible(alsoForeign, 0)
	})
}
