package enrich

import (
	"strings"
)

// titleBoost is added to a side's score when the title alone carries that
// side's signal. Title markers outweigh body text.
const titleBoost = 3

// IsJob decides whether a post is a genuine job listing. Positive and
// negative phrase hits over title+body are counted, the title is inspected
// separately for the strong hiring / seeking-work markers, and the post is a
// job only when the positive score strictly exceeds the negative one.
func (e *Enricher) IsJob(title, body string) bool {
	text := strings.ToLower(title + " " + body)

	positive := countPhrases(text, e.catalog.JobPositive)
	negative := countPhrases(text, e.catalog.JobNegative)

	// Title-based signals are stronger
	titleLowered := strings.ToLower(title)
	if containsAny(titleLowered, e.catalog.TitlePositive) {
		positive += titleBoost
	}
	if containsAny(titleLowered, e.catalog.TitleNegative) {
		negative += titleBoost
	}

	return positive > negative
}
