// Package sheets reads section lists from and writes quotes to Excel workbooks.
package sheets

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Sheet errors.
var (
	ErrNoSheet       = errors.New("workbook has no sheets")
	ErrMissingColumn = errors.New("missing column")
)

// SectionsSheet is the preferred sheet name; otherwise the first sheet is read.
const SectionsSheet = "Sections"

// Column headers, matched case-insensitively.
const (
	ColName      = "name"
	ColLength    = "length"
	ColWidth     = "width"
	ColThickness = "thickness"
)

// ReadSections reads one section per row. Length and width columns are
// required; name and thickness are optional. Cells follow the form's
// coercion rules, and a missing thickness uses defaultThickness.
func ReadSections(r io.Reader, defaultThickness float64) ([]estimator.Section, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := pickSheet(f)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMissingColumn, sheet)
	}

	cols := headerIndex(rows[0])
	for _, required := range []string{ColLength, ColWidth} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrMissingColumn, required, sheet)
		}
	}

	sections := make([]estimator.Section, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		name := cell(row, cols, ColName)
		if name == "" {
			name = fmt.Sprintf("row %d", i+2)
		}

		thickness := defaultThickness
		if raw := cell(row, cols, ColThickness); raw != "" {
			thickness = form.ParseNumber(raw)
		}

		sections = append(sections, estimator.Section{
			Name: name,
			Slab: valueobject.NewSlab(
				form.ParseNumber(cell(row, cols, ColLength)),
				form.ParseNumber(cell(row, cols, ColWidth)),
				thickness,
			),
		})
	}
	return sections, nil
}

func pickSheet(f *excelize.File) string {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, SectionsSheet) {
			return name
		}
	}
	return f.GetSheetName(0)
}

// headerIndex maps lowercased header text to its column index. Units in
// parentheses are ignored, so "Length (ft)" matches "length".
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if p := strings.Index(key, "("); p >= 0 {
			key = strings.TrimSpace(key[:p])
		}
		if _, dup := idx[key]; !dup && key != "" {
			idx[key] = i
		}
	}
	return idx
}

func cell(row []string, cols map[string]int, col string) string {
	i, ok := cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
