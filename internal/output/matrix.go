package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/dentalref/dentalref/internal/engine"
)

// scoreBand maps a 0-4 property score to its display band
func scoreBand(score int) string {
	switch {
	case score >= 4:
		return "excellent"
	case score == 3:
		return "good"
	case score == 2:
		return "moderate"
	case score == 1:
		return "poor"
	default:
		return "n/a"
	}
}

// comparisonMatrixTable renders the property matrix and per-material
// totals side by side
func comparisonMatrixTable(w io.Writer, matrix *engine.ComparisonMatrix) error {
	if len(matrix.Columns) == 0 {
		fmt.Fprintln(w, "No materials to compare.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	header := append([]string{"PROPERTY", "GROUP"}, matrix.Columns...)
	table.Header(header)

	for _, row := range matrix.Rows {
		cells := []string{row.Property, string(row.Category)}
		for _, score := range row.Scores {
			cells = append(cells, fmt.Sprintf("%d (%s)", score, scoreBand(score)))
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	totals := tablewriter.NewWriter(w)
	totals.Header([]string{"MATERIAL", "AVERAGE", "RATING", "PHYSICAL", "BIOLOGICAL", "CLINICAL", "OPTICAL"})
	for _, t := range matrix.Totals {
		if err := totals.Append([]string{
			t.Name,
			strconv.FormatFloat(t.Average, 'f', 2, 64),
			t.Rating,
			formatCategory(t, engine.PropertyPhysical),
			formatCategory(t, engine.PropertyBiological),
			formatCategory(t, engine.PropertyClinical),
			formatCategory(t, engine.PropertyOptical),
		}); err != nil {
			return err
		}
	}
	return totals.Render()
}

func formatCategory(t engine.EntityTotal, cat engine.PropertyCategory) string {
	avg, ok := t.ByCategory[cat]
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
