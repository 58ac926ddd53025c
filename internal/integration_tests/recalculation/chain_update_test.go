package integration_tests

import (
	"testing"

	"github.com/specialistvlad/cellgrid/internal/app"
	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: changing an input recomputes everything downstream, in order.
func TestRecalculation_ChainUpdate(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "A1" { contents = 3 }
			cell "B1" { contents = "=A1*2" }
			cell "C1" { contents = "=B1+A1" }
			cell "A1" { contents = 5 }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{ShowClosure: true})

	require.NoError(t, result.Err)
	testutil.AssertValue(t, result, "A1", cell.Number(5))
	testutil.AssertValue(t, result, "B1", cell.Number(10))
	testutil.AssertValue(t, result, "C1", cell.Number(15))
	testutil.AssertDependents(t, result, "A1", "B1", "C1")
	testutil.AssertDependents(t, result, "B1", "C1")
	require.Contains(t, result.Output, "A1 B1 C1\n")
}

// Test for: files in a directory are applied in lexical order.
func TestRecalculation_MultiFileOrder(t *testing.T) {
	files := map[string]string{
		"10_totals.hcl": `cell "Total" { contents = "=Price * Qty" }`,
		"00_inputs.hcl": `
			cell "Price" { contents = "2.5" }
			cell "Qty"   { contents = 4 }
		`,
		"nested/20_override.hcl": `cell "Qty" { contents = 10 }`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	testutil.AssertValue(t, result, "Total", cell.Number(25))
}

// Test for: replacing a formula drops its old edges.
func TestRecalculation_FormulaReplacement(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "A1" { contents = 1 }
			cell "B1" { contents = 2 }
			cell "C1" { contents = "=A1 + 1" }
			cell "C1" { contents = "=B1 + 1" }
			cell "A1" { contents = 100 }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	testutil.AssertValue(t, result, "C1", cell.Number(3))
	testutil.AssertDependents(t, result, "A1")
	testutil.AssertDependents(t, result, "B1", "C1")
}

// Test for: references to unset or text cells read as NaN, not as errors.
func TestRecalculation_UndefinedReferences(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			cell "E1" { contents = "=Z9*2" }
			cell "T1" { contents = "label" }
			cell "F1" { contents = "=T1 + 1" }
			cell "Z9" { contents = 4 }
		`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	testutil.AssertValue(t, result, "E1", cell.Number(8))
	v, err := result.App.Sheet().Value("F1")
	require.NoError(t, err)
	require.Equal(t, "NaN", v.String())
}
