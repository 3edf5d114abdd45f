package engine

import (
	"sort"
	"strings"

	"github.com/dentalref/dentalref/internal/dataset"
)

// PropertyCategory groups material properties for the comparison matrix
type PropertyCategory string

const (
	PropertyPhysical   PropertyCategory = "physical"
	PropertyBiological PropertyCategory = "biological"
	PropertyClinical   PropertyCategory = "clinical"
	PropertyOptical    PropertyCategory = "optical"
)

// propertyCategories is the fixed classification table; unlisted keys
// default to physical
var propertyCategories = map[string]PropertyCategory{
	"strength":            PropertyPhysical,
	"durability":          PropertyPhysical,
	"wear_resistance":     PropertyPhysical,
	"polishability":       PropertyPhysical,
	"fracture_toughness":  PropertyPhysical,
	"biocompatibility":    PropertyBiological,
	"fluoride_release":    PropertyBiological,
	"longevity":           PropertyClinical,
	"cost_considerations": PropertyClinical,
	"category":            PropertyClinical,
	"aesthetics":          PropertyOptical,
	"translucency":        PropertyOptical,
	"color_stability":     PropertyOptical,
	"radiopacity":         PropertyOptical,
}

// CategoryFor classifies a property key for the comparison matrix
func CategoryFor(key string) PropertyCategory {
	if cat, ok := propertyCategories[key]; ok {
		return cat
	}
	return PropertyPhysical
}

// MatrixRow is one property scored across every compared material; Scores
// is aligned with the matrix column order
type MatrixRow struct {
	Property string           `json:"property"`
	Category PropertyCategory `json:"category"`
	Scores   []int            `json:"scores"`
}

// EntityTotal summarizes one material across all matrix rows
type EntityTotal struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	Average    float64                      `json:"average_score"`
	Rating     string                       `json:"rating"`
	ByCategory map[PropertyCategory]float64 `json:"by_category"`
}

// ComparisonMatrix is the side-by-side scoring of a set of materials.
// Columns and row scores keep the input material order; Totals can be
// re-sorted with SortTotals.
type ComparisonMatrix struct {
	Columns []string      `json:"columns"`
	Rows    []MatrixRow   `json:"rows"`
	Totals  []EntityTotal `json:"totals"`
}

// BuildComparisonMatrix scores every compared material against the union
// of all their property keys plus the synthetic category, longevity and
// cost_considerations rows. Materials lacking a property score 0 in that
// row rather than being omitted.
func BuildComparisonMatrix(materials []dataset.Material) *ComparisonMatrix {
	matrix := &ComparisonMatrix{}
	for _, m := range materials {
		matrix.Columns = append(matrix.Columns, m.Name)
	}

	keys := propertyUnion(materials)
	for _, key := range keys {
		row := MatrixRow{
			Property: key,
			Category: CategoryFor(key),
			Scores:   make([]int, len(materials)),
		}
		for i := range materials {
			row.Scores[i] = ScoreAttribute(key, propertyFor(&materials[i], key))
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	for i := range materials {
		matrix.Totals = append(matrix.Totals, entityTotal(&materials[i], matrix.Rows, i))
	}
	return matrix
}

// propertyUnion returns the sorted union of property keys plus the three
// synthetic keys, in a deterministic order
func propertyUnion(materials []dataset.Material) []string {
	seen := map[string]bool{}
	var keys []string
	for _, m := range materials {
		for key := range m.Properties {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)

	for _, synthetic := range []string{"category", "longevity", "cost_considerations"} {
		if !seen[synthetic] {
			keys = append(keys, synthetic)
		}
	}
	return keys
}

// propertyFor resolves a matrix key to the material's value, covering the
// synthetic keys that live outside the properties map
func propertyFor(m *dataset.Material, key string) []string {
	if v := m.Property(key); len(v) > 0 {
		return v
	}
	switch key {
	case "category":
		return singleValue(string(m.Category))
	case "longevity":
		return singleValue(m.Longevity)
	case "cost_considerations":
		return singleValue(m.CostConsiderations)
	}
	return nil
}

func entityTotal(m *dataset.Material, rows []MatrixRow, col int) EntityTotal {
	total := EntityTotal{
		ID:         m.ID,
		Name:       m.Name,
		ByCategory: map[PropertyCategory]float64{},
	}
	if len(rows) == 0 {
		total.Rating = rating(0)
		return total
	}

	sum := 0
	catSums := map[PropertyCategory]int{}
	catCounts := map[PropertyCategory]int{}
	for _, row := range rows {
		score := row.Scores[col]
		sum += score
		catSums[row.Category] += score
		catCounts[row.Category]++
	}

	total.Average = float64(sum) / float64(len(rows))
	for cat, catSum := range catSums {
		total.ByCategory[cat] = float64(catSum) / float64(catCounts[cat])
	}
	total.Rating = rating(total.Average)
	return total
}

func rating(average float64) string {
	switch {
	case average >= 3.5:
		return "excellent"
	case average >= 2.5:
		return "good"
	case average >= 1.5:
		return "moderate"
	default:
		return "poor"
	}
}

// SortTotals reorders the per-material totals descending by the given key:
// "total" for the overall average, or a property category name. Ties keep
// their previous order. Unknown keys leave the order untouched.
func (m *ComparisonMatrix) SortTotals(key string) {
	key = strings.ToLower(key)
	if key == "" || key == "total" {
		sort.SliceStable(m.Totals, func(i, j int) bool {
			return m.Totals[i].Average > m.Totals[j].Average
		})
		return
	}

	cat := PropertyCategory(key)
	switch cat {
	case PropertyPhysical, PropertyBiological, PropertyClinical, PropertyOptical:
		sort.SliceStable(m.Totals, func(i, j int) bool {
			return m.Totals[i].ByCategory[cat] > m.Totals[j].ByCategory[cat]
		})
	}
}
