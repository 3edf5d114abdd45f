package engine

import "strings"

// ladderStep maps one intensity keyword to a score; first match wins
type ladderStep struct {
	keyword string
	score   int
}

var durabilitySteps = []ladderStep{
	{"20+", 4},
	{"15+", 4},
	{"10-15", 3},
	{"5-10", 2},
	{"3-5", 1},
}

// ladders holds the per-property keyword ladders. Order within a ladder is
// the required precedence: a value containing both "good" and "excellent"
// scores as "excellent".
var ladders = map[string][]ladderStep{
	"strength": {
		{"very high", 4},
		{"high", 3},
		{"moderate", 2},
		{"low", 1},
	},
	"aesthetics": {
		{"excellent", 4},
		{"good", 3},
		{"fair", 2},
		{"poor", 1},
	},
	"durability": durabilitySteps,
	"longevity":  durabilitySteps,
	"biocompatibility": {
		{"excellent", 4},
		{"good", 3},
		{"moderate", 2},
	},
	"wear_resistance": {
		{"excellent", 4},
		{"high", 3},
		{"good", 3},
		{"moderate", 2},
		{"poor", 1},
		{"low", 1},
	},
}

// defaultLadder scores values for properties without a dedicated ladder,
// and values a dedicated ladder does not recognize
var defaultLadder = []ladderStep{
	{"excellent", 4},
	{"good", 3},
	{"high", 3},
	{"moderate", 2},
	{"fair", 2},
	{"poor", 1},
	{"low", 1},
}

// ScoreAttribute maps a qualitative property value onto a 0-4 scale.
// Absent values and the "N/A" sentinel score 0; fluoride_release is a
// binary beneficial-property rule scoring 3 for "yes" and 1 otherwise;
// everything else runs through its keyword ladder, falling back to the
// default ladder and finally to a moderate 2.
func ScoreAttribute(key string, value []string) int {
	if len(value) == 0 {
		return 0
	}
	joined := strings.Join(value, " / ")
	if joined == "" || strings.EqualFold(joined, "N/A") {
		return 0
	}
	text := strings.ToLower(joined)

	if key == "fluoride_release" {
		if strings.Contains(text, "yes") {
			return 3
		}
		return 1
	}

	if steps, ok := ladders[key]; ok {
		if score, ok := matchLadder(steps, text); ok {
			return score
		}
	}
	if score, ok := matchLadder(defaultLadder, text); ok {
		return score
	}
	return 2
}

func matchLadder(steps []ladderStep, text string) (int, bool) {
	for _, step := range steps {
		if strings.Contains(text, step.keyword) {
			return step.score, true
		}
	}
	return 0, false
}
