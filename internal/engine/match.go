package engine

import "github.com/dentalref/dentalref/internal/dataset"

// MatchResult is the accumulated outcome of running the rule table against
// one material. Delta is the signed sum of all rule deltas and may be
// negative; string slices keep rule order and are never deduplicated.
type MatchResult struct {
	Delta        int
	Reasoning    []string
	Warnings     []string
	Alternatives []string
}

// MatchMaterial evaluates every rule in the default table against the
// material. Rules run unconditionally; no rule short-circuits another.
func MatchMaterial(m *dataset.Material, p *CriteriaProfile, selected map[string]bool) MatchResult {
	return matchWithRules(DefaultRules(), m, p, selected)
}

func matchWithRules(rules []Rule, m *dataset.Material, p *CriteriaProfile, selected map[string]bool) MatchResult {
	var result MatchResult
	for _, rule := range rules {
		r := rule.Evaluate(m, p, selected)
		result.Delta += r.Delta
		result.Reasoning = append(result.Reasoning, r.Reasoning...)
		result.Warnings = append(result.Warnings, r.Warnings...)
		result.Alternatives = append(result.Alternatives, r.Alternatives...)
	}
	return result
}
