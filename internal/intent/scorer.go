package intent

import "strings"

const (
	keywordWeight = 2
	boostWeight   = 3
)

// Result is the outcome of scoring one utterance. Intent is always a
// registered pattern name; Confidence equals the maximum of AllScores.
type Result struct {
	Intent     string             `json:"intent"`
	Confidence float64            `json:"confidence"`
	Entities   map[string]string  `json:"entities"`
	AllScores  map[string]float64 `json:"all_scores"`
}

// Score classifies an utterance against the static pattern table.
// Keyword hits count double, boost hits triple, and the raw sum is
// normalized by the utterance's word count so long messages do not
// outscore short targeted ones. When nothing matches, the result falls
// back to general_info with zero confidence; ties between non-zero
// scores go to the earlier-registered pattern.
func Score(text string) Result {
	lower := strings.ToLower(text)
	words := len(strings.Fields(lower))
	if words < 1 {
		words = 1
	}

	allScores := make(map[string]float64, len(patterns))
	best := GeneralInfo
	bestScore := 0.0

	for _, p := range patterns {
		raw := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				raw += keywordWeight
			}
		}
		for _, b := range p.Boosts {
			if strings.Contains(lower, b) {
				raw += boostWeight
			}
		}
		score := float64(raw) / float64(words)
		allScores[p.Name] = score
		if score > bestScore {
			bestScore = score
			best = p.Name
		}
	}

	result := Result{
		Intent:     best,
		Confidence: bestScore,
		Entities:   map[string]string{},
		AllScores:  allScores,
	}
	if p, ok := PatternFor(best); ok {
		result.Entities = Extract(text, p.Entities)
	}
	return result
}
