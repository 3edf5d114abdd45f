package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dentalref/dentalref/internal/database"
	"github.com/dentalref/dentalref/internal/dataset"
	"github.com/dentalref/dentalref/internal/engine"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []engine.ScoredResult:
		return recommendationsTable(w, v)
	case *engine.ComparisonMatrix:
		return comparisonMatrixTable(w, v)
	case []engine.RelatedProcedure:
		return relatedTable(w, v)
	case []dataset.Material:
		return materialsTable(w, v)
	case *dataset.Material:
		return materialDetail(w, v)
	case []dataset.Procedure:
		return proceduresTable(w, v)
	case *dataset.Procedure:
		return procedureDetail(w, v)
	case []dataset.Drug:
		return drugsTable(w, v)
	case *dataset.Drug:
		return drugDetail(w, v)
	case []database.SavedProfile:
		return profilesTable(w, v)
	case *database.CacheStats:
		return cacheStatsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recommendationsTable(w io.Writer, results []engine.ScoredResult) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No recommendations found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(w, "%d. %s  (score %d)\n", i+1, r.Material.Name, r.TotalScore)
		fmt.Fprintf(w, "   Category:  %s\n", r.Material.Category)
		fmt.Fprintf(w, "   Sub-scores: clinical %d/5, cost %d/5, longevity %d/5\n",
			r.Categories.Clinical, r.Categories.Cost, r.Categories.Longevity)

		for _, reason := range r.Reasoning {
			fmt.Fprintf(w, "   + %s\n", reason)
		}
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "   ! %s\n", warning)
		}
		for _, alt := range r.Alternatives {
			fmt.Fprintf(w, "   > %s\n", alt)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func relatedTable(w io.Writer, related []engine.RelatedProcedure) error {
	if len(related) == 0 {
		fmt.Fprintln(w, "No related procedures found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROCEDURE\tCATEGORY\tSCORE\tRELATIONSHIP")
	fmt.Fprintln(tw, "---------\t--------\t-----\t------------")

	for _, r := range related {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			truncate(r.Procedure.Name, 35),
			r.Procedure.Category,
			r.Score,
			r.Relationship,
		)
	}

	return tw.Flush()
}

func materialsTable(w io.Writer, materials []dataset.Material) error {
	if len(materials) == 0 {
		fmt.Fprintln(w, "No materials found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLONGEVITY")
	fmt.Fprintln(tw, "--\t----\t--------\t---------")

	for _, m := range materials {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.ID,
			truncate(m.Name, 32),
			m.Category,
			truncate(m.Longevity, 30),
		)
	}

	return tw.Flush()
}

func materialDetail(w io.Writer, m *dataset.Material) error {
	fmt.Fprintf(w, "Name:      %s\n", m.Name)
	fmt.Fprintf(w, "Category:  %s\n", m.Category)
	if m.Description != "" {
		fmt.Fprintf(w, "About:     %s\n", m.Description)
	}
	if m.Longevity != "" {
		fmt.Fprintf(w, "Longevity: %s\n", m.Longevity)
	}
	if m.CostConsiderations != "" {
		fmt.Fprintf(w, "Cost:      %s\n", m.CostConsiderations)
	}

	if len(m.Properties) > 0 {
		fmt.Fprintln(w, "\nProperties:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, key := range sortedKeys(m.Properties) {
			fmt.Fprintf(tw, "  %s\t%s\n", key, m.Properties[key].Joined())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	printList(w, "Indications", m.Indications)
	printList(w, "Contraindications", m.Contraindications)
	return nil
}

func proceduresTable(w io.Writer, procedures []dataset.Procedure) error {
	if len(procedures) == 0 {
		fmt.Fprintln(w, "No procedures found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
	fmt.Fprintln(tw, "--\t----\t--------")

	for _, p := range procedures {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, truncate(p.Name, 40), p.Category)
	}

	return tw.Flush()
}

func procedureDetail(w io.Writer, p *dataset.Procedure) error {
	fmt.Fprintf(w, "Name:      %s\n", p.Name)
	fmt.Fprintf(w, "Category:  %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(w, "About:     %s\n", p.Description)
	}
	if p.Diagnosis != "" {
		fmt.Fprintf(w, "Diagnosis: %s\n", p.Diagnosis)
	}

	printList(w, "Differential diagnosis", p.DifferentialDiagnosis)
	printList(w, "Investigations", p.Investigations)
	printList(w, "Indications", p.Indications)
	printList(w, "Contraindications", p.Contraindications)
	return nil
}

func drugsTable(w io.Writer, drugs []dataset.Drug) error {
	if len(drugs) == 0 {
		fmt.Fprintln(w, "No drugs found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLASS\tDOSAGE")
	fmt.Fprintln(tw, "--\t----\t-----\t------")

	for _, d := range drugs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			d.ID,
			truncate(d.Name, 30),
			truncate(d.Class, 28),
			truncate(d.Dosage, 34),
		)
	}

	return tw.Flush()
}

func drugDetail(w io.Writer, d *dataset.Drug) error {
	fmt.Fprintf(w, "Name:   %s\n", d.Name)
	fmt.Fprintf(w, "Class:  %s\n", d.Class)
	if d.Dosage != "" {
		fmt.Fprintf(w, "Dosage: %s\n", d.Dosage)
	}

	printList(w, "Indications", d.Indications)
	printList(w, "Contraindications", d.Contraindications)
	printList(w, "Interactions", d.Interactions)
	return nil
}

func profilesTable(w io.Writer, profiles []database.SavedProfile) error {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No saved profiles.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPROCEDURE\tLOCATION\tAESTHETICS\tUPDATED")
	fmt.Fprintln(tw, "----\t---------\t--------\t----------\t-------")

	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Name,
			truncate(p.Profile.ProcedureType, 30),
			p.Profile.Location,
			p.Profile.Aesthetic,
			p.UpdatedAt.Format("Jan 02, 2006"),
		)
	}

	return tw.Flush()
}

func cacheStatsTable(w io.Writer, s *database.CacheStats) error {
	fmt.Fprintln(w, "Dataset Cache")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Entries:  %d\n", s.Entries)
	if s.Oldest != nil {
		fmt.Fprintf(w, "Oldest:   %s\n", s.Oldest.Format("Jan 02, 2006 15:04"))
	}
	if s.Newest != nil {
		fmt.Fprintf(w, "Newest:   %s\n", s.Newest.Format("Jan 02, 2006 15:04"))
	}
	return nil
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func sortedKeys(m map[string]dataset.PropertyValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
