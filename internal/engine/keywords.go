package engine

import "strings"

// maxKeywords caps how many tokens a single text contributes
const maxKeywords = 10

var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
	"a": true, "an": true,
}

// ExtractKeywords tokenizes free text into its significant words: lower-cased,
// punctuation stripped, stop words and tokens of length <= 2 dropped, capped
// at the first 10 survivors in original order.
func ExtractKeywords(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	var keywords []string
	for _, token := range strings.Fields(b.String()) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
