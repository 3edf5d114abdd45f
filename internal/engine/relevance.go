package engine

import (
	"sort"
	"strings"

	"github.com/dentalref/dentalref/internal/dataset"
)

// Relevance scores how related a candidate procedure is to the main one:
// +30 for the same category, +10 per shared diagnosis keyword, +5 per
// matching differential-diagnosis entry and +3 per matching investigation.
// There are no negative contributions.
func Relevance(main, candidate *dataset.Procedure) int {
	score := 0

	if main.Category != "" && main.Category == candidate.Category {
		score += 30
	}

	score += 10 * keywordOverlap(ExtractKeywords(main.Diagnosis), ExtractKeywords(candidate.Diagnosis))

	for _, d := range candidate.DifferentialDiagnosis {
		if containsFuzzy(main.DifferentialDiagnosis, d) {
			score += 5
		}
	}

	for _, inv := range candidate.Investigations {
		if containsFuzzy(main.Investigations, inv) {
			score += 3
		}
	}

	return score
}

// keywordOverlap counts distinct keywords present in both sets
func keywordOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inA := make(map[string]bool, len(a))
	for _, kw := range a {
		inA[kw] = true
	}
	counted := make(map[string]bool, len(b))
	overlap := 0
	for _, kw := range b {
		if inA[kw] && !counted[kw] {
			counted[kw] = true
			overlap++
		}
	}
	return overlap
}

// containsFuzzy reports whether entry substring-matches any list item,
// case-insensitively, in either direction
func containsFuzzy(list []string, entry string) bool {
	e := strings.ToLower(strings.TrimSpace(entry))
	if e == "" {
		return false
	}
	for _, item := range list {
		i := strings.ToLower(strings.TrimSpace(item))
		if i == "" {
			continue
		}
		if strings.Contains(i, e) || strings.Contains(e, i) {
			return true
		}
	}
	return false
}

// RelatedProcedure pairs a candidate with its relevance score and the
// display-only relationship label
type RelatedProcedure struct {
	Procedure    dataset.Procedure `json:"procedure"`
	Score        int               `json:"score"`
	Relationship string            `json:"relationship"`
}

// RankRelated scores every candidate against the main procedure and sorts
// descending by relevance; ties keep input order. The main procedure
// itself is skipped.
func RankRelated(main *dataset.Procedure, candidates []dataset.Procedure) []RelatedProcedure {
	var related []RelatedProcedure
	for i := range candidates {
		c := candidates[i]
		if c.ID == main.ID {
			continue
		}
		related = append(related, RelatedProcedure{
			Procedure:    c,
			Score:        Relevance(main, &c),
			Relationship: RelationshipLabel(main, &c),
		})
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Score > related[j].Score
	})
	return related
}

// labelRule classifies a procedure pair by substring checks on their names.
// The label is independent of the relevance score and is used only for
// display grouping.
type labelRule struct {
	mainHas      string
	candidateHas string
	label        string
}

var labelRules = []labelRule{
	{"extraction", "implant", "Replacement therapy"},
	{"extraction", "denture", "Replacement therapy"},
	{"root canal", "crown", "Restorative follow-up"},
	{"pulpotomy", "root canal", "Definitive follow-up"},
	{"restoration", "crown", "Restorative follow-up"},
	{"", "scaling", "Preventive care"},
	{"", "fluoride", "Preventive care"},
}

// RelationshipLabel returns the display grouping for a procedure pair
func RelationshipLabel(main, candidate *dataset.Procedure) string {
	mainName := strings.ToLower(main.Name)
	candName := strings.ToLower(candidate.Name)

	for _, rule := range labelRules {
		if rule.mainHas != "" && !strings.Contains(mainName, rule.mainHas) {
			continue
		}
		if rule.candidateHas != "" && !strings.Contains(candName, rule.candidateHas) {
			continue
		}
		return rule.label
	}

	if main.Category != "" && main.Category == candidate.Category {
		return "Related treatment"
	}
	return "Supportive care"
}
