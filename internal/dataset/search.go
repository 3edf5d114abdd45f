package dataset

import "strings"

// FindMaterial looks a material up by ID or (case-insensitive) name
func (s *Store) FindMaterial(nameOrID string) *Material {
	for i := range s.materials {
		if s.materials[i].ID == nameOrID {
			return &s.materials[i]
		}
	}
	for i := range s.materials {
		if strings.EqualFold(s.materials[i].Name, nameOrID) {
			return &s.materials[i]
		}
	}
	return nil
}

// FindProcedure looks a procedure up by ID or (case-insensitive) name
func (s *Store) FindProcedure(nameOrID string) *Procedure {
	for i := range s.procedures {
		if s.procedures[i].ID == nameOrID {
			return &s.procedures[i]
		}
	}
	for i := range s.procedures {
		if strings.EqualFold(s.procedures[i].Name, nameOrID) {
			return &s.procedures[i]
		}
	}
	return nil
}

// SearchMaterials returns materials whose name, category, description or
// indications contain the query (case-insensitive)
func (s *Store) SearchMaterials(query string) []Material {
	q := strings.ToLower(query)
	var out []Material
	for _, m := range s.materials {
		if matchesAny(q, m.Name, string(m.Category), m.Description) ||
			matchesList(q, m.Indications) {
			out = append(out, m)
		}
	}
	return out
}

// SearchProcedures returns procedures matching the query
func (s *Store) SearchProcedures(query string) []Procedure {
	q := strings.ToLower(query)
	var out []Procedure
	for _, p := range s.procedures {
		if matchesAny(q, p.Name, string(p.Category), p.Description, p.Diagnosis) ||
			matchesList(q, p.Indications) {
			out = append(out, p)
		}
	}
	return out
}

// SearchDrugs returns drugs matching the query
func (s *Store) SearchDrugs(query string) []Drug {
	q := strings.ToLower(query)
	var out []Drug
	for _, d := range s.drugs {
		if matchesAny(q, d.Name, d.Class) || matchesList(q, d.Indications) {
			out = append(out, d)
		}
	}
	return out
}

// MaterialsByCategory filters materials by category (case-insensitive)
func (s *Store) MaterialsByCategory(category string) []Material {
	var out []Material
	for _, m := range s.materials {
		if strings.EqualFold(string(m.Category), category) {
			out = append(out, m)
		}
	}
	return out
}

// ProceduresByCategory filters procedures by category (case-insensitive)
func (s *Store) ProceduresByCategory(category string) []Procedure {
	var out []Procedure
	for _, p := range s.procedures {
		if strings.EqualFold(string(p.Category), category) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesList(q string, list []string) bool {
	for _, item := range list {
		if strings.Contains(strings.ToLower(item), q) {
			return true
		}
	}
	return false
}
