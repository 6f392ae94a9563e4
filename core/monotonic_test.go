package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonic_SetAndGet(t *testing.T) {
	var m Monotonic

	assert.Equal(t, int64(0), m.Get(), "Initial value should be 0")

	require.NoError(t, m.Set(10))
	assert.Equal(t, int64(10), m.Get())

	// Weakly monotonic: writing the same value is allowed.
	require.NoError(t, m.Set(10))
	assert.Equal(t, int64(10), m.Get())

	require.NoError(t, m.Set(25))
	assert.Equal(t, int64(25), m.Get())
}

func TestMonotonic_SetBelowCurrent(t *testing.T) {
	var m Monotonic
	require.NoError(t, m.Set(100))

	err := m.Set(99)
	require.Error(t, err)
	assert.True(t, IsMonotonicityError(err), "Error should be a MonotonicityError")
	assert.Equal(t, int64(100), m.Get(), "Value should be untouched after a failed Set")
}

func TestMonotonic_Reset(t *testing.T) {
	var m Monotonic
	require.NoError(t, m.Set(100))

	// Reset is the unchecked escape hatch: it may go backwards.
	m.Reset(40)
	assert.Equal(t, int64(40), m.Get())

	require.NoError(t, m.Set(41))
	assert.Equal(t, int64(41), m.Get())
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsInvalidArgument(&InvalidArgumentError{Message: "x"}))
	assert.True(t, IsOrderError(&OrderError{LastSeqno: 2, Proposed: 1}))
	assert.True(t, IsLogicError(&LogicError{Message: "x"}))
	assert.True(t, IsExpectationError(&ExpectationError{Message: "x"}))

	assert.False(t, IsLogicError(&InvalidArgumentError{Message: "x"}))
	assert.False(t, IsMonotonicityError(nil))
}
