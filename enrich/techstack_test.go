package enrich

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTechStack(t *testing.T) {
	e := newTestEnricher()

	techs := e.ExtractTechStack("Full Stack Developer", "Must know React, Node.js, and AWS")
	assert.Subset(t, techs, []string{"React", "Node.js", "AWS"})
}

func TestExtractTechStackNoMention(t *testing.T) {
	e := newTestEnricher()

	assert.Empty(t, e.ExtractTechStack("Looking for a manager", "Leadership role"))
}

func TestExtractTechStackIsSortedAndDeduplicated(t *testing.T) {
	e := newTestEnricher()

	// "python" appears twice, "postgres" and "sql" both map to SQL.
	techs := e.ExtractTechStack("Python developer", "python scripts against a postgres sql database")
	assert.True(t, sort.StringsAreSorted(techs))

	seen := map[string]bool{}
	for _, tech := range techs {
		assert.False(t, seen[tech], "%s returned twice", tech)
		seen[tech] = true
	}
	assert.Contains(t, techs, "Python")
	assert.Contains(t, techs, "SQL")
}

func TestExtractTechStackCaseInsensitive(t *testing.T) {
	e := newTestEnricher()

	techs := e.ExtractTechStack("KUBERNETES and Docker", "")
	assert.Contains(t, techs, "Kubernetes")
	assert.Contains(t, techs, "Docker")
}
