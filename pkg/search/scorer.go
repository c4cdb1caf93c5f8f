package search

import "strings"

const (
	titleContainsWeight   = 0.8
	titleExactBonus       = 0.5
	titlePrefixBonus      = 0.3
	contentContainsWeight = 0.4
	occurrenceStep        = 0.05
	occurrenceBonusCap    = 0.3
)

// Score ranks a candidate title/content pair against a query term. The result
// is always within [0, 1]. Matching is a plain substring scan, which is enough
// at personal-journal scale.
func Score(query, title, content string) float64 {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return 0
	}

	titleLower := strings.ToLower(title)
	contentLower := strings.ToLower(content)

	var score float64

	if strings.Contains(titleLower, term) {
		score += titleContainsWeight
		if titleLower == term {
			score += titleExactBonus
		}
		if strings.HasPrefix(titleLower, term) {
			score += titlePrefixBonus
		}
	}

	if strings.Contains(contentLower, term) {
		score += contentContainsWeight

		bonus := float64(strings.Count(contentLower, term)) * occurrenceStep
		if bonus > occurrenceBonusCap {
			bonus = occurrenceBonusCap
		}
		score += bonus
	}

	if score > 1 {
		score = 1
	}
	return score
}
