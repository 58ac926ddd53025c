package testutil

import (
	"testing"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/stretchr/testify/require"
)

// AssertValue checks that the named cell in the harness result evaluated to
// want.
func AssertValue(t *testing.T, result *HarnessResult, name string, want cell.Value) {
	t.Helper()

	require.NotNil(t, result.App, "App should not be nil")
	got, err := result.App.Sheet().Value(name)
	require.NoError(t, err, "cell %s should exist", name)
	require.Equal(t, want, got, "unexpected value for cell %s", name)
}

// AssertDependents checks the direct dependents of the named cell.
func AssertDependents(t *testing.T, result *HarnessResult, name string, want ...string) {
	t.Helper()

	require.NotNil(t, result.App, "App should not be nil")
	got, err := result.App.Sheet().DirectDependents(name)
	require.NoError(t, err)
	if len(want) == 0 {
		require.Empty(t, got, "cell %s should have no dependents", name)
		return
	}
	require.Equal(t, want, got, "unexpected dependents for cell %s", name)
}
