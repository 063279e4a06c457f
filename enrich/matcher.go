// Package enrich implements the rule-based classification engine: the job
// gate, the four taxonomy matchers, technology extraction, and the sentiment
// and urgency scores. Everything here is pure over the input text and the
// read-only catalog, so enrichment of distinct posts can run in parallel
// without coordination.
package enrich

import (
	"strings"

	"github.com/jobsift/jobsift/catalog"
)

// MatchCategory returns the best-matching category name for the text, or nil
// when no phrase of any category occurs. Each configured phrase present as a
// substring of the lowercased text contributes one hit to its category. Ties
// on the maximum hit count are broken by taxonomy declaration order: the
// first declared category keeps the win. This keeps output deterministic on
// ambiguous posts, e.g. one mentioning both "senior" and "lead".
func MatchCategory(text string, taxonomy catalog.Taxonomy) *string {
	lowered := strings.ToLower(text)

	var best *string
	bestHits := 0
	for i := range taxonomy {
		hits := countPhrases(lowered, taxonomy[i].Phrases)
		if hits > bestHits {
			bestHits = hits
			name := taxonomy[i].Name
			best = &name
		}
	}
	return best
}

// countPhrases counts how many of the configured phrases occur at least once
// in the already-lowercased text. Substring containment, not word-boundary
// tokenization.
func countPhrases(lowered string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			count++
		}
	}
	return count
}

// containsAny reports whether any of the phrases occurs in the
// already-lowercased text.
func containsAny(lowered string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
