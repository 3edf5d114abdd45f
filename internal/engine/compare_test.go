package engine

import (
	"reflect"
	"testing"

	"github.com/dentalref/dentalref/internal/dataset"
)

func compareFixtures() []dataset.Material {
	return []dataset.Material{
		{
			ID:       "lithium-disilicate",
			Name:     "Lithium Disilicate",
			Category: dataset.CategoryProsthodontic,
			Properties: map[string]dataset.PropertyValue{
				"strength":           {"High"},
				"aesthetics":         {"Excellent"},
				"fracture_toughness": {"Moderate"},
			},
			Longevity:          "10-15 years",
			CostConsiderations: "High cost",
		},
		{
			ID:       "pfm-crown",
			Name:     "Porcelain Fused to Metal",
			Category: dataset.CategoryProsthodontic,
			Properties: map[string]dataset.PropertyValue{
				"strength":   {"Very high"},
				"aesthetics": {"Good"},
			},
			Longevity:          "10-15 years",
			CostConsiderations: "Moderate cost",
		},
	}
}

func TestBuildComparisonMatrix(t *testing.T) {
	matrix := BuildComparisonMatrix(compareFixtures())

	wantColumns := []string{"Lithium Disilicate", "Porcelain Fused to Metal"}
	if !reflect.DeepEqual(matrix.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", matrix.Columns, wantColumns)
	}

	// real keys sorted first, synthetic keys appended
	wantRows := []string{"aesthetics", "fracture_toughness", "strength", "category", "longevity", "cost_considerations"}
	var gotRows []string
	for _, row := range matrix.Rows {
		gotRows = append(gotRows, row.Property)
	}
	if !reflect.DeepEqual(gotRows, wantRows) {
		t.Errorf("row order = %v, want %v", gotRows, wantRows)
	}
}

func TestBuildComparisonMatrix_AbsentPropertyScoresZero(t *testing.T) {
	matrix := BuildComparisonMatrix(compareFixtures())

	row := findRow(t, matrix, "fracture_toughness")
	want := []int{2, 0} // PFM has no fracture_toughness entry
	if !reflect.DeepEqual(row.Scores, want) {
		t.Errorf("fracture_toughness scores = %v, want %v", row.Scores, want)
	}
}

func TestBuildComparisonMatrix_RowCategories(t *testing.T) {
	matrix := BuildComparisonMatrix(compareFixtures())

	tests := []struct {
		property string
		want     PropertyCategory
	}{
		{"strength", PropertyPhysical},
		{"fracture_toughness", PropertyPhysical},
		{"aesthetics", PropertyOptical},
		{"longevity", PropertyClinical},
		{"cost_considerations", PropertyClinical},
		{"category", PropertyClinical},
	}
	for _, tt := range tests {
		if got := findRow(t, matrix, tt.property).Category; got != tt.want {
			t.Errorf("category of %s = %s, want %s", tt.property, got, tt.want)
		}
	}
}

func TestCategoryFor_Default(t *testing.T) {
	if got := CategoryFor("setting_time"); got != PropertyPhysical {
		t.Errorf("CategoryFor(setting_time) = %s, want physical", got)
	}
	if got := CategoryFor("biocompatibility"); got != PropertyBiological {
		t.Errorf("CategoryFor(biocompatibility) = %s, want biological", got)
	}
}

func TestBuildComparisonMatrix_Totals(t *testing.T) {
	matrix := BuildComparisonMatrix(compareFixtures())
	if len(matrix.Totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(matrix.Totals))
	}

	// Lithium Disilicate rows: aesthetics 4, fracture_toughness 2, strength 3,
	// category 2 (unscored text), longevity 3, cost_considerations 3
	ld := matrix.Totals[0]
	if ld.ID != "lithium-disilicate" {
		t.Fatalf("first total = %s, want lithium-disilicate", ld.ID)
	}
	wantAvg := float64(4+2+3+2+3+3) / 6
	if ld.Average != wantAvg {
		t.Errorf("Average = %v, want %v", ld.Average, wantAvg)
	}
	if ld.Rating != "good" {
		t.Errorf("Rating = %s, want good", ld.Rating)
	}
	if got := ld.ByCategory[PropertyOptical]; got != 4 {
		t.Errorf("optical sub-average = %v, want 4", got)
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		average float64
		want    string
	}{
		{4.0, "excellent"},
		{3.5, "excellent"},
		{3.49, "good"},
		{2.5, "good"},
		{2.49, "moderate"},
		{1.5, "moderate"},
		{1.49, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		if got := rating(tt.average); got != tt.want {
			t.Errorf("rating(%v) = %s, want %s", tt.average, got, tt.want)
		}
	}
}

func TestSortTotals(t *testing.T) {
	build := func() *ComparisonMatrix {
		return &ComparisonMatrix{
			Totals: []EntityTotal{
				{ID: "a", Average: 2.0, ByCategory: map[PropertyCategory]float64{PropertyPhysical: 1.0, PropertyOptical: 4.0}},
				{ID: "b", Average: 3.0, ByCategory: map[PropertyCategory]float64{PropertyPhysical: 3.5, PropertyOptical: 2.0}},
				{ID: "c", Average: 3.0, ByCategory: map[PropertyCategory]float64{PropertyPhysical: 2.0, PropertyOptical: 2.0}},
			},
		}
	}

	tests := []struct {
		name string
		key  string
		want []string
	}{
		{"total descending, stable tie", "total", []string{"b", "c", "a"}},
		{"empty key means total", "", []string{"b", "c", "a"}},
		{"physical category", "physical", []string{"b", "c", "a"}},
		{"optical category", "optical", []string{"a", "b", "c"}},
		{"mixed case key", "Total", []string{"b", "c", "a"}},
		{"unknown key keeps order", "no-such-category", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := build()
			matrix.SortTotals(tt.key)
			if got := totalsOrder(matrix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortTotals(%q) order = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func findRow(t *testing.T, m *ComparisonMatrix, property string) MatrixRow {
	t.Helper()
	for _, row := range m.Rows {
		if row.Property == property {
			return row
		}
	}
	t.Fatalf("row %s not found", property)
	return MatrixRow{}
}

func totalsOrder(m *ComparisonMatrix) []string {
	var ids []string
	for _, total := range m.Totals {
		ids = append(ids, total.ID)
	}
	return ids
}
