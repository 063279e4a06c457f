package enrich

import (
	"sort"
	"strings"
)

// ExtractTechStack returns the technologies whose trigger phrases appear in
// the post text. Multi-label: unlike the taxonomies, every technology with at
// least one phrase hit is included. The combined text is padded with spaces
// before matching, mitigating a trailing title word and a leading body word
// concatenating into a false phrase hit. Output is deduplicated and sorted
// lexicographically for determinism.
func (e *Enricher) ExtractTechStack(title, body string) []string {
	text := strings.ToLower(" " + title + " " + body + " ")

	found := []string{}
	for i := range e.catalog.TechStack {
		if containsAny(text, e.catalog.TechStack[i].Phrases) {
			found = append(found, e.catalog.TechStack[i].Name)
		}
	}
	sort.Strings(found)
	return found
}
