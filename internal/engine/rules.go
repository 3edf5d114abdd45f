package engine

import (
	"fmt"
	"strings"

	"github.com/dentalref/dentalref/internal/dataset"
)

// RuleResult is the contribution of one rule evaluation
type RuleResult struct {
	Delta        int
	Reasoning    []string
	Warnings     []string
	Alternatives []string
}

// Rule evaluates one candidate material against the criteria profile.
// Rules are independent; every rule in the table runs unconditionally and
// their deltas accumulate.
type Rule struct {
	Name     string
	Evaluate func(m *dataset.Material, p *CriteriaProfile, selected map[string]bool) RuleResult
}

// DefaultRules returns the ordered rule table the matcher runs. Reasoning
// and warning strings are appended in this order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "procedure_match", Evaluate: procedureMatchRule},
		{Name: "location", Evaluate: locationRule},
		{Name: "stress_level", Evaluate: stressRule},
		{Name: "aesthetic_requirement", Evaluate: aestheticRule},
		{Name: "patient_age", Evaluate: ageRule},
		{Name: "cost_constraint", Evaluate: costRule},
		{Name: "longevity_expectation", Evaluate: longevityRule},
		{Name: "biocompatibility", Evaluate: biocompatibilityRule},
		{Name: "contraindications", Evaluate: contraindicationRule},
		{Name: "category_bonus", Evaluate: categoryBonusRule},
		{Name: "already_selected", Evaluate: alreadySelectedRule},
	}
}

// prop returns a material property lower-cased for substring checks
func prop(m *dataset.Material, key string) string {
	return strings.ToLower(strings.Join(m.Property(key), " "))
}

// procedureMatchRule awards +25 when the material's indications, or a small
// set of name/category heuristics, match the requested procedure type
func procedureMatchRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	pt := strings.ToLower(strings.TrimSpace(p.ProcedureType))
	if pt == "" {
		return RuleResult{}
	}

	matched := false
	for _, ind := range m.Indications {
		indLower := strings.ToLower(ind)
		if strings.Contains(indLower, pt) || strings.Contains(pt, indLower) {
			matched = true
			break
		}
	}
	if !matched {
		name := strings.ToLower(m.Name)
		switch {
		case strings.Contains(pt, "crown") && strings.Contains(name, "crown"):
			matched = true
		case strings.Contains(pt, "restoration") && m.Category == dataset.CategoryRestorative:
			matched = true
		case strings.Contains(pt, "implant") && m.Category == dataset.CategoryImplant:
			matched = true
		}
	}

	if !matched {
		return RuleResult{}
	}
	return RuleResult{
		Delta:     25,
		Reasoning: []string{fmt.Sprintf("Suitable for %s", p.ProcedureType)},
	}
}

// locationRule scores aesthetics for anterior placement and strength for
// posterior placement; "any" skips the rule
func locationRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	switch p.Location {
	case LocationAnterior:
		aesthetics := prop(m, "aesthetics")
		if strings.Contains(aesthetics, "excellent") || strings.Contains(aesthetics, "good") {
			return RuleResult{
				Delta:     20,
				Reasoning: []string{"Good aesthetics for anterior placement"},
			}
		}
		return RuleResult{
			Delta:    -10,
			Warnings: []string{"Aesthetics may be unsatisfactory in the visible anterior zone"},
		}
	case LocationPosterior:
		strength := prop(m, "strength")
		if strings.Contains(strength, "very high") || strings.Contains(strength, "high") {
			return RuleResult{
				Delta:     20,
				Reasoning: []string{"Strength suitable for posterior load bearing"},
			}
		}
		return RuleResult{
			Delta:    -15,
			Warnings: []string{"May lack strength for posterior occlusal forces"},
		}
	}
	return RuleResult{}
}

// stressRule rewards high-strength materials under high occlusal stress
func stressRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	if p.StressLevel != StressHigh {
		return RuleResult{}
	}
	strength := prop(m, "strength")
	if strings.Contains(strength, "very high") || strings.Contains(strength, "high") {
		return RuleResult{
			Delta:     15,
			Reasoning: []string{"Withstands high occlusal stress"},
		}
	}
	return RuleResult{
		Delta:    -20,
		Warnings: []string{"Insufficient strength for high stress areas"},
	}
}

// aestheticRule applies only for critical aesthetic requirements
func aestheticRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	if p.Aesthetic != AestheticCritical {
		return RuleResult{}
	}
	aesthetics := prop(m, "aesthetics")
	if strings.Contains(aesthetics, "excellent") {
		return RuleResult{
			Delta:     15,
			Reasoning: []string{"Excellent aesthetics for a critical case"},
		}
	}
	if strings.Contains(aesthetics, "good") {
		return RuleResult{
			Delta:        8,
			Alternatives: []string{"Consider an all-ceramic material such as lithium disilicate for critical aesthetics"},
		}
	}
	return RuleResult{
		Delta:    -15,
		Warnings: []string{"Aesthetics unlikely to meet critical requirements"},
	}
}

// ageRule covers the pediatric and geriatric adjustments; adults get none.
// For pediatric patients both the fluoride bonus and the crown penalty can
// fire on the same material.
func ageRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	var r RuleResult
	switch p.PatientAge {
	case AgePediatric:
		if strings.Contains(prop(m, "fluoride_release"), "yes") {
			r.Delta += 10
			r.Reasoning = append(r.Reasoning, "Fluoride release benefits pediatric patients")
		}
		if m.Category == dataset.CategoryProsthodontic && strings.Contains(strings.ToLower(m.Name), "crown") {
			r.Delta -= 10
			r.Warnings = append(r.Warnings, "Crown work may be unsuitable for pediatric patients")
		}
	case AgeGeriatric:
		if strings.Contains(prop(m, "biocompatibility"), "excellent") {
			r.Delta += 8
			r.Reasoning = append(r.Reasoning, "Excellent biocompatibility suits geriatric patients")
		}
	}
	return r
}

// costRule matches the material's cost profile against the budget constraint
func costRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	cost := strings.ToLower(m.CostConsiderations)
	switch p.Cost {
	case CostBudget:
		if strings.Contains(cost, "low") || strings.Contains(cost, "cost-effective") {
			return RuleResult{
				Delta:     15,
				Reasoning: []string{"Fits a budget-conscious treatment plan"},
			}
		}
		if strings.Contains(cost, "very high") || strings.Contains(cost, "high") {
			return RuleResult{
				Delta:    -15,
				Warnings: []string{"Cost may exceed the stated budget"},
			}
		}
	case CostPremium:
		if strings.Contains(cost, "very high") || strings.Contains(cost, "high") {
			return RuleResult{
				Delta:     10,
				Reasoning: []string{"Premium option matching the cost expectation"},
			}
		}
	}
	return RuleResult{}
}

// longevityRule matches stated longevity/durability against the expectation
func longevityRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	text := strings.ToLower(m.Longevity) + " " + prop(m, "durability")
	switch p.Longevity {
	case LongevityLong:
		if strings.Contains(text, "20+") || strings.Contains(text, "15+") {
			return RuleResult{
				Delta:     15,
				Reasoning: []string{"Long service life matches the longevity expectation"},
			}
		}
		if strings.Contains(text, "10-15") {
			return RuleResult{
				Delta:     8,
				Reasoning: []string{"Acceptable service life for a long-term restoration"},
			}
		}
	case LongevityShort:
		if strings.Contains(text, "3-5") || strings.Contains(text, "5") {
			return RuleResult{
				Delta:     8,
				Reasoning: []string{"Suitable for a short-term restoration"},
			}
		}
	}
	return RuleResult{}
}

// biocompatibilityRule is always evaluated regardless of the profile
func biocompatibilityRule(m *dataset.Material, _ *CriteriaProfile, _ map[string]bool) RuleResult {
	bio := prop(m, "biocompatibility")
	if strings.Contains(bio, "excellent") {
		return RuleResult{
			Delta:     10,
			Reasoning: []string{"Excellent biocompatibility"},
		}
	}
	if strings.Contains(bio, "good") {
		return RuleResult{
			Delta:     5,
			Reasoning: []string{"Good biocompatibility"},
		}
	}
	return RuleResult{}
}

// contraindicationRule applies a single -30 penalty when any requested
// contraindication tag fuzzy-matches any of the material's
// contraindications. The penalty reduces the score but never excludes the
// material from ranking.
func contraindicationRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	for _, tag := range p.Contraindications {
		for _, contra := range m.Contraindications {
			if fuzzyContraMatch(tag, contra) {
				return RuleResult{
					Delta:    -30,
					Warnings: []string{"Has contraindications that may apply to this case"},
				}
			}
		}
	}
	return RuleResult{}
}

// fuzzyContraMatch matches case-insensitively by substring in either
// direction, or by shared first word
func fuzzyContraMatch(tag, contra string) bool {
	t := strings.ToLower(strings.TrimSpace(tag))
	c := strings.ToLower(strings.TrimSpace(contra))
	if t == "" || c == "" {
		return false
	}
	if strings.Contains(c, t) || strings.Contains(t, c) {
		return true
	}
	return firstWord(t) == firstWord(c)
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// categoryBonusRule rewards category/procedure-type pairings
func categoryBonusRule(m *dataset.Material, p *CriteriaProfile, _ map[string]bool) RuleResult {
	pt := strings.ToLower(p.ProcedureType)
	switch m.Category {
	case dataset.CategoryRestorative:
		if strings.Contains(pt, "restoration") {
			return RuleResult{
				Delta:     10,
				Reasoning: []string{"Restorative material for restorative work"},
			}
		}
	case dataset.CategoryProsthodontic:
		if strings.Contains(pt, "crown") || strings.Contains(pt, "bridge") {
			return RuleResult{
				Delta:     10,
				Reasoning: []string{"Prosthodontic material for crown and bridge work"},
			}
		}
	case dataset.CategoryImplant:
		if strings.Contains(pt, "implant") {
			return RuleResult{
				Delta:     15,
				Reasoning: []string{"Implant material for implant procedures"},
			}
		}
	}
	return RuleResult{}
}

// alreadySelectedRule slightly demotes materials already picked for
// comparison without excluding them
func alreadySelectedRule(m *dataset.Material, _ *CriteriaProfile, selected map[string]bool) RuleResult {
	if selected[m.ID] {
		return RuleResult{
			Delta:     -5,
			Reasoning: []string{"Already selected for comparison"},
		}
	}
	return RuleResult{}
}
