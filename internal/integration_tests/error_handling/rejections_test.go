package integration_tests

import (
	"testing"

	"github.com/specialistvlad/cellgrid/internal/app"
	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: a circular reference is rejected and leaves the sheet unchanged.
func TestErrorHandling_CycleIsRejected(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "A1" { contents = "=B1 + 1" }
			cell "B1" { contents = 2 }
			cell "B1" { contents = "=A1 * 2" }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.NoError(t, result.Err, "a rejected assignment is reported, not fatal")
	require.Contains(t, result.Output, "REJECTED")
	require.Contains(t, result.Output, "Rejected circular reference.")
	testutil.AssertValue(t, result, "B1", cell.Number(2))
	testutil.AssertValue(t, result, "A1", cell.Number(3))
	testutil.AssertDependents(t, result, "A1")
}

// Test for: strict mode turns rejections into a failed run.
func TestErrorHandling_StrictFailsRun(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "D1" { contents = "=D1+1" }
			cell "9bad" { contents = 1 }
			cell "E1" { contents = "=(" }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{Strict: true})

	require.ErrorIs(t, result.Err, app.ErrRejected)
	require.Contains(t, result.Err.Error(), "3 of 3")
}

// Test for: a runtime evaluation failure is a cell value, not a rejection.
func TestErrorHandling_EvaluationErrorIsValue(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "A1" { contents = 0 }
			cell "B1" { contents = "=1 / A1" }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{Strict: true})

	require.NoError(t, result.Err)
	v, err := result.App.Sheet().Value("B1")
	require.NoError(t, err)
	require.IsType(t, cell.Error{}, v)
	require.Contains(t, result.Output, "#ERROR")
}

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "A1" {
			  contents = 1
			// Missing closing brace here
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "failed to parse")
}
