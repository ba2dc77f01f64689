package helper_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/cap_able_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrZero_TypedValue(t *testing.T) {
	require.Equal(t, 42, helper.OrZero[int](42))
	require.Equal(t, "hi", helper.OrZero[string]("hi"))
}

func TestOrZero_NilMeansZero(t *testing.T) {
	require.Zero(t, helper.OrZero[int](nil))
	require.Nil(t, helper.OrZero[error](nil))
	require.Nil(t, helper.OrZero[map[string]int](nil))
}

func TestOrZero_MismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		helper.OrZero[int]("not an int")
	})
}

func TestMustRepValue_Match(t *testing.T) {
	require.Equal(t, "payload", helper.MustRepValue[string]("somerep", "payload"))
}

func TestMustRepValue_MismatchNamesRepresentation(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		msg, ok := r.(string)
		require.True(t, ok, "panic value should be a message")
		if !strings.Contains(msg, "somerep") {
			t.Fatalf("panic should name the representation, got: %s", msg)
		}
	}()
	helper.MustRepValue[int]("somerep", "not an int")
}
