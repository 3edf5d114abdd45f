package engine

import (
	"testing"

	"github.com/dentalref/dentalref/internal/dataset"
)

func relevanceFixtures() (main dataset.Procedure, candidates []dataset.Procedure) {
	main = dataset.Procedure{
		ID:                    "root-canal",
		Name:                  "Root Canal Treatment",
		Category:              dataset.ProcedureEndodontic,
		Diagnosis:             "Irreversible pulpitis with periapical involvement",
		DifferentialDiagnosis: []string{"Reversible pulpitis", "Cracked tooth syndrome"},
		Investigations:        []string{"Periapical radiograph", "Pulp vitality testing"},
	}
	candidates = []dataset.Procedure{
		{
			ID:                    "pulpotomy",
			Name:                  "Pulpotomy",
			Category:              dataset.ProcedureEndodontic,
			Diagnosis:             "Reversible pulpitis in a primary tooth",
			DifferentialDiagnosis: []string{"Irreversible pulpitis"},
			Investigations:        []string{"Periapical radiograph"},
		},
		{
			ID:        "scaling",
			Name:      "Scaling and Root Planing",
			Category:  dataset.ProcedurePeriodontal,
			Diagnosis: "Chronic gingivitis with calculus deposits",
		},
		{
			ID:        "crown-prep",
			Name:      "Crown Preparation",
			Category:  dataset.ProcedureProsthodontic,
			Diagnosis: "Structurally compromised tooth after root canal",
		},
	}
	return main, candidates
}

func TestRelevance_SameCategory(t *testing.T) {
	main := dataset.Procedure{ID: "a", Category: dataset.ProcedureEndodontic}
	same := dataset.Procedure{ID: "b", Category: dataset.ProcedureEndodontic}
	other := dataset.Procedure{ID: "c", Category: dataset.ProcedurePeriodontal}

	if got := Relevance(&main, &same); got != 30 {
		t.Errorf("same category = %d, want exactly 30", got)
	}
	if got := Relevance(&main, &other); got != 0 {
		t.Errorf("different category = %d, want 0", got)
	}
}

func TestRelevance_EmptyCategoryNeverMatches(t *testing.T) {
	main := dataset.Procedure{ID: "a"}
	candidate := dataset.Procedure{ID: "b"}
	if got := Relevance(&main, &candidate); got != 0 {
		t.Errorf("two empty categories = %d, want 0", got)
	}
}

func TestRelevance_DiagnosisKeywords(t *testing.T) {
	main := dataset.Procedure{ID: "a", Diagnosis: "Dental caries with pulpal involvement"}
	candidate := dataset.Procedure{ID: "b", Diagnosis: "Deep dental caries approaching the pulp"}

	// shared distinct keywords: dental, caries
	if got := Relevance(&main, &candidate); got != 20 {
		t.Errorf("keyword overlap score = %d, want 20", got)
	}
}

func TestRelevance_DuplicateKeywordsCountOnce(t *testing.T) {
	main := dataset.Procedure{ID: "a", Diagnosis: "caries caries caries"}
	candidate := dataset.Procedure{ID: "b", Diagnosis: "rampant caries, arrested caries"}

	if got := Relevance(&main, &candidate); got != 10 {
		t.Errorf("duplicate keyword score = %d, want 10", got)
	}
}

func TestRelevance_Components(t *testing.T) {
	main, candidates := relevanceFixtures()
	pulpotomy := candidates[0]

	// same category +30; one shared diagnosis keyword ("pulpitis") +10;
	// differential "Irreversible pulpitis" fuzzy-matches main's
	// "Reversible pulpitis" +5; investigation "Periapical radiograph"
	// matches +3
	want := 30 + 10 + 5 + 3
	if got := Relevance(&main, &pulpotomy); got != want {
		t.Errorf("Relevance = %d, want %d", got, want)
	}
}

func TestRankRelated(t *testing.T) {
	main, candidates := relevanceFixtures()

	// the main procedure itself must be skipped
	all := append([]dataset.Procedure{main}, candidates...)
	related := RankRelated(&main, all)

	if len(related) != len(candidates) {
		t.Fatalf("expected %d related procedures, got %d", len(candidates), len(related))
	}
	for _, r := range related {
		if r.Procedure.ID == main.ID {
			t.Errorf("main procedure appeared in its own related list")
		}
	}
	for i := 1; i < len(related); i++ {
		if related[i].Score > related[i-1].Score {
			t.Errorf("related list not descending at %d", i)
		}
	}
	if related[0].Procedure.ID != "pulpotomy" {
		t.Errorf("top related = %s, want pulpotomy", related[0].Procedure.ID)
	}
}

func TestRelationshipLabel(t *testing.T) {
	tests := []struct {
		name      string
		main      dataset.Procedure
		candidate dataset.Procedure
		want      string
	}{
		{
			name:      "extraction to implant",
			main:      dataset.Procedure{Name: "Tooth Extraction"},
			candidate: dataset.Procedure{Name: "Implant Placement"},
			want:      "Replacement therapy",
		},
		{
			name:      "extraction to denture",
			main:      dataset.Procedure{Name: "Surgical Extraction"},
			candidate: dataset.Procedure{Name: "Complete Denture"},
			want:      "Replacement therapy",
		},
		{
			name:      "root canal to crown",
			main:      dataset.Procedure{Name: "Root Canal Treatment"},
			candidate: dataset.Procedure{Name: "Crown Preparation"},
			want:      "Restorative follow-up",
		},
		{
			name:      "pulpotomy to root canal",
			main:      dataset.Procedure{Name: "Pulpotomy"},
			candidate: dataset.Procedure{Name: "Root Canal Treatment"},
			want:      "Definitive follow-up",
		},
		{
			name:      "anything to scaling",
			main:      dataset.Procedure{Name: "Crown Preparation"},
			candidate: dataset.Procedure{Name: "Scaling and Root Planing"},
			want:      "Preventive care",
		},
		{
			name:      "anything to fluoride",
			main:      dataset.Procedure{Name: "Class II Composite"},
			candidate: dataset.Procedure{Name: "Fluoride Application"},
			want:      "Preventive care",
		},
		{
			name:      "same category fallback",
			main:      dataset.Procedure{Name: "Apicoectomy", Category: dataset.ProcedureEndodontic},
			candidate: dataset.Procedure{Name: "Pulp Capping", Category: dataset.ProcedureEndodontic},
			want:      "Related treatment",
		},
		{
			name:      "unrelated fallback",
			main:      dataset.Procedure{Name: "Apicoectomy", Category: dataset.ProcedureEndodontic},
			candidate: dataset.Procedure{Name: "Veneer Placement", Category: dataset.ProcedureProsthodontic},
			want:      "Supportive care",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelationshipLabel(&tt.main, &tt.candidate); got != tt.want {
				t.Errorf("RelationshipLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
