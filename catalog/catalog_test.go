package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsPopulated(t *testing.T) {
	cat := Default()

	require.NotEmpty(t, cat.JobTypes)
	require.NotEmpty(t, cat.Seniorities)
	require.NotEmpty(t, cat.Domains)
	require.NotEmpty(t, cat.WorkModes)
	require.NotEmpty(t, cat.TechStack)
	require.NotEmpty(t, cat.JobPositive)
	require.NotEmpty(t, cat.JobNegative)
	require.NotEmpty(t, cat.TitlePositive)
	require.NotEmpty(t, cat.TitleNegative)
	require.NotEmpty(t, cat.Urgency)
	require.NotEmpty(t, cat.Subreddits)
	assert.Greater(t, cat.PostsPerSubreddit, 0)
}

// Matching lowercases the input text only, so every catalog phrase must
// already be lowercase or it can never hit.
func TestAllPhrasesAreLowercase(t *testing.T) {
	cat := Default()

	checkTaxonomy := func(name string, taxonomy Taxonomy) {
		for _, category := range taxonomy {
			assert.NotEmpty(t, category.Phrases, "%s/%s has no phrases", name, category.Name)
			for _, phrase := range category.Phrases {
				assert.Equal(t, strings.ToLower(phrase), phrase,
					"%s/%s phrase %q is not lowercase", name, category.Name, phrase)
			}
		}
	}
	checkTaxonomy("job_types", cat.JobTypes)
	checkTaxonomy("seniorities", cat.Seniorities)
	checkTaxonomy("domains", cat.Domains)
	checkTaxonomy("work_modes", cat.WorkModes)
	checkTaxonomy("tech_stack", cat.TechStack)

	for _, list := range [][]string{cat.JobPositive, cat.JobNegative, cat.TitlePositive, cat.TitleNegative, cat.Urgency} {
		for _, phrase := range list {
			assert.Equal(t, strings.ToLower(phrase), phrase, "phrase %q is not lowercase", phrase)
		}
	}
}

func TestCategoryNamesAreUniquePerTaxonomy(t *testing.T) {
	cat := Default()

	for name, taxonomy := range map[string]Taxonomy{
		"job_types":   cat.JobTypes,
		"seniorities": cat.Seniorities,
		"domains":     cat.Domains,
		"work_modes":  cat.WorkModes,
		"tech_stack":  cat.TechStack,
	} {
		seen := map[string]bool{}
		for _, category := range taxonomy {
			assert.False(t, seen[category.Name], "%s declares %q twice", name, category.Name)
			seen[category.Name] = true
		}
	}
}
