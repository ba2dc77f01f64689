package identity_test

import (
	"testing"

	"github.com/on-the-ground/cap_able_go/caps"
	"github.com/on-the-ground/cap_able_go/caps/identity"
	"github.com/on-the-ground/cap_able_go/caps/lawcheck"
	"github.com/stretchr/testify/require"
)

func TestIdentity_SequencingLaws(t *testing.T) {
	lawcheck.Sequencing(t, lawcheck.FromEnv(), identity.Repr{}, func(m caps.Comp[int]) int {
		return identity.Run(m)
	})
}

func TestIdentity_RunPeelsValue(t *testing.T) {
	fx := identity.Repr{}
	require.Equal(t, "hello", identity.Run(caps.Pure(fx, "hello")))
}

func TestIdentity_ChainIsImmediate(t *testing.T) {
	fx := identity.Repr{}
	order := []string{}
	m := caps.Chain(fx, caps.Suspend(fx, func() int {
		order = append(order, "first")
		return 1
	}), func(n int) caps.Comp[int] {
		order = append(order, "second")
		return caps.Pure(fx, n+1)
	})
	require.Equal(t, []string{"first", "second"}, order)
	require.Equal(t, 2, identity.Run(m))
}
