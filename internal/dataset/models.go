package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaterialCategory classifies a dental material
type MaterialCategory string

const (
	CategoryRestorative   MaterialCategory = "Restorative"
	CategoryProsthodontic MaterialCategory = "Prosthodontic"
	CategoryImplant       MaterialCategory = "Implant"
	CategoryEndodontic    MaterialCategory = "Endodontic"
	CategoryPeriodontal   MaterialCategory = "Periodontal"
	CategoryOrthodontic   MaterialCategory = "Orthodontic"
)

// ProcedureCategory classifies a dental procedure
type ProcedureCategory string

const (
	ProcedureRestorative   ProcedureCategory = "Restorative"
	ProcedureEndodontic    ProcedureCategory = "Endodontic"
	ProcedurePeriodontal   ProcedureCategory = "Periodontal"
	ProcedureProsthodontic ProcedureCategory = "Prosthodontic"
	ProcedureOralSurgery   ProcedureCategory = "Oral Surgery"
	ProcedurePreventive    ProcedureCategory = "Preventive"
	ProcedureEmergency     ProcedureCategory = "Emergency"
)

// PropertyValue holds a qualitative property descriptor. Source JSON may
// encode it as a single string or as an array of strings; both unmarshal
// into the same slice form.
type PropertyValue []string

// UnmarshalJSON accepts either a JSON string or a JSON array of strings
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = PropertyValue{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("property value must be a string or array of strings: %w", err)
	}
	*p = PropertyValue(many)
	return nil
}

// Joined returns the descriptor(s) as a single string
func (p PropertyValue) Joined() string {
	return strings.Join(p, " / ")
}

// Material represents a dental material record
type Material struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	Category           MaterialCategory         `json:"category"`
	Description        string                   `json:"description,omitempty"`
	Properties         map[string]PropertyValue `json:"properties,omitempty"`
	Indications        []string                 `json:"indications,omitempty"`
	Contraindications  []string                 `json:"contraindications,omitempty"`
	Longevity          string                   `json:"longevity,omitempty"`
	CostConsiderations string                   `json:"cost_considerations,omitempty"`
}

// Property returns the named property value, or nil if absent
func (m *Material) Property(key string) PropertyValue {
	if m.Properties == nil {
		return nil
	}
	return m.Properties[key]
}

// Procedure represents a dental procedure record
type Procedure struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Category              ProcedureCategory `json:"category"`
	Description           string            `json:"description,omitempty"`
	Diagnosis             string            `json:"diagnosis,omitempty"`
	DifferentialDiagnosis []string          `json:"differential_diagnosis,omitempty"`
	Investigations        []string          `json:"investigations,omitempty"`
	Indications           []string          `json:"indications,omitempty"`
	Contraindications     []string          `json:"contraindications,omitempty"`
}

// Drug represents a drug reference record
type Drug struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Class             string   `json:"class"`
	Dosage            string   `json:"dosage,omitempty"`
	Indications       []string `json:"indications,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	Interactions      []string `json:"interactions,omitempty"`
}
