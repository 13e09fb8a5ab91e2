package sheets

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/entity"
)

// Sheet names of an exported quote.
const (
	QuoteSheet         = "Quote"
	QuoteSectionsSheet = "Sections"
)

const numFmtTwoDecimals = "#,##0.00"

type styles struct {
	header int
	amount int
}

// WriteQuote writes q as a workbook with a summary sheet and, for quotes
// built from sections, a per-section sheet.
func WriteQuote(w io.Writer, q *entity.Quote) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), QuoteSheet); err != nil {
		return fmt.Errorf("failed to name quote sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeSummary(f, st, q); err != nil {
		return err
	}
	if q.IsMultiSection() {
		if err := writeSections(f, st, q); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create header style: %w", err)
	}
	fmtTwo := numFmtTwoDecimals
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtTwo})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create amount style: %w", err)
	}
	return styles{header: header, amount: amount}, nil
}

func writeSummary(f *excelize.File, st styles, q *entity.Quote) error {
	currency := string(q.PricePerTon.Currency)

	rows := [][]interface{}{
		{"Project", q.Project},
		{"Quote ID", q.ID.String()},
		{"Created", q.CreatedAt.Format("2006-01-02 15:04 MST")},
		{"Density (lbs/ft³)", q.Density},
		{"Price per ton (" + currency + ")", q.PricePerTon.ToFloat()},
	}
	if !q.IsMultiSection() {
		rows = append(rows,
			[]interface{}{"Length (ft)", q.Slab.LengthFt},
			[]interface{}{"Width (ft)", q.Slab.WidthFt},
			[]interface{}{"Thickness (in)", q.Slab.ThicknessIn},
		)
	}
	rows = append(rows,
		[]interface{}{"Volume (ft³)", q.Breakdown.CubicFeet},
		[]interface{}{"Weight (lbs)", q.Breakdown.WeightLbs},
		[]interface{}{"Required Asphalt (tons)", q.Result.Tons},
		[]interface{}{"Estimated Cost (" + currency + ")", q.Cost.ToFloat()},
		[]interface{}{fmt.Sprintf("Order with %g%% waste (tons)", q.Recommendation.LowPct), q.Recommendation.Low.Tons},
		[]interface{}{fmt.Sprintf("Order with %g%% waste (tons)", q.Recommendation.HighPct), q.Recommendation.High.Tons},
	)

	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(QuoteSheet, ref, &row); err != nil {
			return fmt.Errorf("failed to write quote row %d: %w", i+1, err)
		}
	}

	last := fmt.Sprintf("B%d", len(rows))
	if err := f.SetCellStyle(QuoteSheet, "A1", fmt.Sprintf("A%d", len(rows)), st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(QuoteSheet, "B4", last, st.amount); err != nil {
		return err
	}
	return f.SetColWidth(QuoteSheet, "A", "B", 32)
}

func writeSections(f *excelize.File, st styles, q *entity.Quote) error {
	if _, err := f.NewSheet(QuoteSectionsSheet); err != nil {
		return fmt.Errorf("failed to create sections sheet: %w", err)
	}

	header := []interface{}{"Name", "Length (ft)", "Width (ft)", "Thickness (in)", "Area (ft²)", "Tons", "Cost"}
	if err := f.SetSheetRow(QuoteSectionsSheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range q.Sections {
		row := []interface{}{s.Name, s.LengthFt, s.WidthFt, s.ThicknessIn, s.SquareFeet, s.Tons, s.Cost}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(QuoteSectionsSheet, ref, &row); err != nil {
			return fmt.Errorf("failed to write section %q: %w", s.Name, err)
		}
	}

	totalRow := len(q.Sections) + 2
	total := []interface{}{"Total", nil, nil, nil, nil, q.Result.Tons, q.Result.Cost}
	if err := f.SetSheetRow(QuoteSectionsSheet, fmt.Sprintf("A%d", totalRow), &total); err != nil {
		return err
	}

	if err := f.SetCellStyle(QuoteSectionsSheet, "A1", "G1", st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(QuoteSectionsSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("A%d", totalRow), st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(QuoteSectionsSheet, "F2", fmt.Sprintf("G%d", totalRow), st.amount); err != nil {
		return err
	}
	return f.SetColWidth(QuoteSectionsSheet, "A", "G", 16)
}
