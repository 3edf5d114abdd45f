package engine

import "testing"

func TestScoreAttribute(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value []string
		want  int
	}{
		// strength ladder
		{"strength very high", "strength", []string{"Very high compressive strength"}, 4},
		{"strength high", "strength", []string{"High"}, 3},
		{"strength moderate", "strength", []string{"Moderate"}, 2},
		{"strength low", "strength", []string{"Low flexural strength"}, 1},

		// aesthetics ladder
		{"aesthetics excellent", "aesthetics", []string{"Excellent, highly polishable"}, 4},
		{"aesthetics good", "aesthetics", []string{"Good"}, 3},
		{"aesthetics fair", "aesthetics", []string{"Fair"}, 2},
		{"aesthetics poor", "aesthetics", []string{"Poor - metallic appearance"}, 1},

		// precedence: the first ladder step to match wins
		{"excellent beats good", "aesthetics", []string{"Good to excellent"}, 4},
		{"very high beats high", "strength", []string{"very high"}, 4},

		// durability / longevity share the year-range ladder
		{"durability 20+", "durability", []string{"20+ years"}, 4},
		{"durability 15+", "durability", []string{"15+ years"}, 4},
		{"durability 10-15", "durability", []string{"10-15 years"}, 3},
		{"durability 5-10", "durability", []string{"5-10 years"}, 2},
		{"durability 3-5", "durability", []string{"3-5 years"}, 1},
		{"longevity 10-15", "longevity", []string{"10-15 years with good hygiene"}, 3},

		// biocompatibility has no dedicated poor step; falls to the default ladder
		{"biocompatibility excellent", "biocompatibility", []string{"Excellent"}, 4},
		{"biocompatibility moderate", "biocompatibility", []string{"Moderate"}, 2},
		{"biocompatibility poor via default", "biocompatibility", []string{"Poor"}, 1},

		// wear resistance
		{"wear excellent", "wear_resistance", []string{"Excellent"}, 4},
		{"wear high", "wear_resistance", []string{"High"}, 3},
		{"wear good", "wear_resistance", []string{"Good"}, 3},
		{"wear low", "wear_resistance", []string{"Low"}, 1},

		// fluoride release is binary
		{"fluoride yes", "fluoride_release", []string{"Yes, sustained release"}, 3},
		{"fluoride no", "fluoride_release", []string{"No"}, 1},
		{"fluoride uncommitted", "fluoride_release", []string{"Minimal"}, 1},

		// unknown keys run the default ladder
		{"unknown key excellent", "translucency", []string{"Excellent"}, 4},
		{"unknown key high", "radiopacity", []string{"High"}, 3},
		{"unknown key fair", "polishability", []string{"Fair"}, 2},

		// unrecognized values settle at moderate
		{"unrecognized value", "strength", []string{"comparable to enamel"}, 2},
		{"unrecognized value unknown key", "setting_time", []string{"fast"}, 2},

		// absent values score zero
		{"nil value", "strength", nil, 0},
		{"empty slice", "strength", []string{}, 0},
		{"empty string", "strength", []string{""}, 0},
		{"not applicable", "fluoride_release", []string{"N/A"}, 0},
		{"not applicable lowercase", "fluoride_release", []string{"n/a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAttribute(tt.key, tt.value)
			if got != tt.want {
				t.Errorf("ScoreAttribute(%q, %v) = %d, want %d", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestScoreAttribute_Range(t *testing.T) {
	values := [][]string{
		nil,
		{"N/A"},
		{"Excellent"},
		{"Good"},
		{"Moderate"},
		{"Poor"},
		{"something unscored"},
		{"20+ years"},
		{"3-5 years"},
	}
	keys := []string{"strength", "aesthetics", "durability", "longevity", "biocompatibility", "wear_resistance", "fluoride_release", "anything_else"}

	for _, key := range keys {
		for _, value := range values {
			got := ScoreAttribute(key, value)
			if got < 0 || got > 4 {
				t.Errorf("ScoreAttribute(%q, %v) = %d, outside [0,4]", key, value, got)
			}
		}
	}
}

func TestScoreAttribute_MultiValue(t *testing.T) {
	// multi-valued properties are scored over the joined text
	got := ScoreAttribute("aesthetics", []string{"Translucent", "Excellent shade matching"})
	if got != 4 {
		t.Errorf("multi-value aesthetics = %d, want 4", got)
	}
}
