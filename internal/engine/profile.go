package engine

import "fmt"

// Location is the anatomical placement a restoration is intended for
type Location string

const (
	LocationAnterior  Location = "anterior"
	LocationPosterior Location = "posterior"
	LocationAny       Location = "any"
)

// StressLevel is the expected occlusal load
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// AestheticRequirement grades how visible the restoration is
type AestheticRequirement string

const (
	AestheticMinimal   AestheticRequirement = "minimal"
	AestheticImportant AestheticRequirement = "important"
	AestheticCritical  AestheticRequirement = "critical"
)

// AgeGroup buckets the patient's age
type AgeGroup string

const (
	AgePediatric AgeGroup = "pediatric"
	AgeAdult     AgeGroup = "adult"
	AgeGeriatric AgeGroup = "geriatric"
)

// CostConstraint is the patient's budget position
type CostConstraint string

const (
	CostBudget   CostConstraint = "budget"
	CostModerate CostConstraint = "moderate"
	CostPremium  CostConstraint = "premium"
)

// LongevityExpectation is how long the restoration should last
type LongevityExpectation string

const (
	LongevityShort  LongevityExpectation = "short"
	LongevityMedium LongevityExpectation = "medium"
	LongevityLong   LongevityExpectation = "long"
)

// CriteriaProfile is the structured set of clinical requirements candidates
// are ranked against. It is immutable input to one ranking call.
type CriteriaProfile struct {
	ProcedureType     string               `json:"procedure_type" toml:"procedure_type"`
	Location          Location             `json:"location" toml:"location"`
	StressLevel       StressLevel          `json:"stress_level" toml:"stress_level"`
	Aesthetic         AestheticRequirement `json:"aesthetic_requirement" toml:"aesthetic_requirement"`
	PatientAge        AgeGroup             `json:"patient_age" toml:"patient_age"`
	Cost              CostConstraint       `json:"cost_constraint" toml:"cost_constraint"`
	Longevity         LongevityExpectation `json:"longevity_expectation" toml:"longevity_expectation"`
	Contraindications []string             `json:"contraindications,omitempty" toml:"contraindications"`
}

// Validate checks that every populated enum field carries a known value.
// Empty fields are allowed; the corresponding rules simply do not fire.
func (p *CriteriaProfile) Validate() error {
	switch p.Location {
	case "", LocationAnterior, LocationPosterior, LocationAny:
	default:
		return fmt.Errorf("unknown location %q (use anterior, posterior or any)", p.Location)
	}
	switch p.StressLevel {
	case "", StressLow, StressModerate, StressHigh:
	default:
		return fmt.Errorf("unknown stress level %q (use low, moderate or high)", p.StressLevel)
	}
	switch p.Aesthetic {
	case "", AestheticMinimal, AestheticImportant, AestheticCritical:
	default:
		return fmt.Errorf("unknown aesthetic requirement %q (use minimal, important or critical)", p.Aesthetic)
	}
	switch p.PatientAge {
	case "", AgePediatric, AgeAdult, AgeGeriatric:
	default:
		return fmt.Errorf("unknown patient age %q (use pediatric, adult or geriatric)", p.PatientAge)
	}
	switch p.Cost {
	case "", CostBudget, CostModerate, CostPremium:
	default:
		return fmt.Errorf("unknown cost constraint %q (use budget, moderate or premium)", p.Cost)
	}
	switch p.Longevity {
	case "", LongevityShort, LongevityMedium, LongevityLong:
	default:
		return fmt.Errorf("unknown longevity expectation %q (use short, medium or long)", p.Longevity)
	}
	return nil
}
