package engine

import (
	"sort"

	"github.com/dentalref/dentalref/internal/dataset"
)

// CategoryScores are the fixed per-candidate sub-scores shown alongside the
// total, each clamped to [0,5]
type CategoryScores struct {
	Clinical  int `json:"clinical"`
	Cost      int `json:"cost"`
	Longevity int `json:"longevity"`
}

// ScoredResult is one ranked candidate with its explanation. Results are
// transient views created fresh per ranking call.
type ScoredResult struct {
	Material     dataset.Material `json:"material"`
	TotalScore   int              `json:"total_score"`
	Categories   CategoryScores   `json:"category_scores"`
	Reasoning    []string         `json:"reasoning,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	Alternatives []string         `json:"alternatives,omitempty"`
}

// Rank scores every candidate against the profile, sorts descending by
// total score (stable: equal scores keep input order) and truncates to
// topN. topN <= 0 disables truncation. The computation is pure and fully
// deterministic for a fixed input.
func Rank(materials []dataset.Material, p *CriteriaProfile, selected map[string]bool, topN int) []ScoredResult {
	results := make([]ScoredResult, 0, len(materials))
	for i := range materials {
		m := materials[i]
		match := MatchMaterial(&m, p, selected)
		results = append(results, ScoredResult{
			Material:     m,
			TotalScore:   match.Delta,
			Categories:   categoryScores(&m),
			Reasoning:    match.Reasoning,
			Warnings:     match.Warnings,
			Alternatives: match.Alternatives,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

func categoryScores(m *dataset.Material) CategoryScores {
	longevity := singleValue(m.Longevity)
	if len(longevity) == 0 {
		longevity = m.Property("durability")
	}
	return CategoryScores{
		Clinical:  clamp05(ScoreAttribute("strength", m.Property("strength"))),
		Cost:      clamp05(ScoreAttribute("cost_considerations", singleValue(m.CostConsiderations))),
		Longevity: clamp05(ScoreAttribute("longevity", longevity)),
	}
}

// singleValue wraps a scalar descriptor for ScoreAttribute; empty strings
// stay absent so they score 0 rather than the moderate default
func singleValue(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func clamp05(score int) int {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}
