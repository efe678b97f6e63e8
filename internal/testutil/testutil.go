// Package testutil provides assertions for tool provider results.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/unitconv/internal/types"
)

// AssertSuccess fails the test unless result succeeded.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	require.True(t, result.Success, "expected success, got error: %s", result.ErrorMessage())
}

// AssertFailure fails the test unless result failed with message.
func AssertFailure(t *testing.T, result *types.Result, message string) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	require.False(t, result.Success, "expected failure, got data: %v", result.Data)
	require.NotNil(t, result.Error, "expected error message, got nil")
	assert.Equal(t, message, *result.Error)
}

// AssertNumber checks a numeric data field within delta.
func AssertNumber(t *testing.T, result *types.Result, field string, want, delta float64) {
	t.Helper()
	AssertSuccess(t, result)
	got, ok := result.Data[field].(float64)
	require.True(t, ok, "field %q is %T, not float64", field, result.Data[field])
	assert.InDelta(t, want, got, delta)
}
