// Package workbook loads ordered cell assignments from HCL files and applies
// them to a cell store.
//
// A workbook file is a sequence of cell blocks:
//
//	cell "A1" { contents = 3 }
//	cell "B1" { contents = "=A1 * 2" }
//	cell "C1" { contents = "total" }
//
// A numeric contents is a number. A string is user input: a leading '=' makes
// it a formula, text that parses as a number is a number, anything else is
// text. Blocks are applied in file order, files in lexical path order.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension Load looks for in directories.
const Extension = ".hcl"

// ErrNoFiles is returned by Load when none of the paths hold a workbook file.
var ErrNoFiles = errors.New("no workbook files found")

// Assignment is one cell block: the cell name and its contents as user input.
type Assignment struct {
	Name  string
	Input string
	Range hcl.Range
}

// Workbook is the ordered list of assignments read from one or more files.
type Workbook struct {
	Files       []string
	Assignments []Assignment
}

// fileRoot decodes the top level of a workbook file.
type fileRoot struct {
	Cells []*cellBlock `hcl:"cell,block"`
}

type cellBlock struct {
	Name     string         `hcl:"name,label"`
	Contents hcl.Expression `hcl:"contents"`
}

// Load reads every workbook file under paths.
func Load(ctx context.Context, paths ...string) (*Workbook, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Workbook loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(Extension, paths...)
	if err != nil {
		return nil, fmt.Errorf("finding workbook files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered workbook files.", "count", len(files))

	parser := hclparse.NewParser()
	wb := &Workbook{Files: files}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading workbook file %s: %w", file, err)
		}
		assignments, err := parse(parser, file, src)
		if err != nil {
			return nil, err
		}
		wb.Assignments = append(wb.Assignments, assignments...)
	}

	logger.Debug("Workbook loading complete.", "files", len(wb.Files), "assignments", len(wb.Assignments))
	return wb, nil
}

// Parse reads assignments from a single workbook source. filename is only
// used in diagnostics.
func Parse(filename string, src []byte) (*Workbook, error) {
	assignments, err := parse(hclparse.NewParser(), filename, src)
	if err != nil {
		return nil, err
	}
	return &Workbook{Files: []string{filename}, Assignments: assignments}, nil
}

func parse(parser *hclparse.Parser, filename string, src []byte) ([]Assignment, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse workbook file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode workbook file %s: %w", filename, diags)
	}

	assignments := make([]Assignment, 0, len(root.Cells))
	for _, blk := range root.Cells {
		input, err := contentsInput(blk.Contents)
		if err != nil {
			return nil, fmt.Errorf("%s: cell %q: %w", blk.Contents.Range(), blk.Name, err)
		}
		assignments = append(assignments, Assignment{
			Name:  blk.Name,
			Input: input,
			Range: blk.Contents.Range(),
		})
	}
	return assignments, nil
}

// contentsInput statically evaluates a contents expression and turns it into
// user input.
func contentsInput(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() {
		return "", errors.New("contents must be a known, non-null value")
	}

	switch val.Type() {
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case cty.String:
		return val.AsString(), nil
	}
	return "", fmt.Errorf("contents must be a number or a string, got %s", val.Type().FriendlyName())
}
