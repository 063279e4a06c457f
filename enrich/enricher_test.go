package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/catalog"
	"github.com/jobsift/jobsift/model"
)

func TestEnrichJobPost(t *testing.T) {
	e := newTestEnricher()

	result, err := e.Enrich(&model.Post{
		PostId: "p1",
		Title:  "[Hiring] Senior Backend Engineer, Remote",
		Body:   "Full-time position. Must know Python, Docker and AWS. Apply ASAP, competitive salary.",
	})
	require.NoError(t, err)

	c := result.Classification
	assert.Equal(t, "p1", c.PostId)
	assert.True(t, c.IsJob)
	require.NotNil(t, c.JobType)
	assert.Equal(t, "Full-time", *c.JobType)
	require.NotNil(t, c.Seniority)
	assert.Equal(t, "Senior", *c.Seniority)
	require.NotNil(t, c.Domain)
	assert.Equal(t, "Software", *c.Domain)
	require.NotNil(t, c.WorkMode)
	assert.Equal(t, "Remote", *c.WorkMode)
	assert.Greater(t, c.UrgencyScore, 0.0)
	assert.False(t, c.ClassifiedAt.IsZero())
	assert.Subset(t, result.TechStack, []string{"Python", "Docker", "AWS"})
}

// A rejected post carries no taxonomy labels, no tags and zero urgency, but
// sentiment is still scored: the mood view covers non-job posts too.
func TestEnrichNonJobPost(t *testing.T) {
	e := NewEnricher(catalog.Default(), func(string) float64 { return 0.5 })

	result, err := e.Enrich(&model.Post{
		PostId: "p2",
		Title:  "Should I learn React or Angular?",
		Body:   "Career advice needed.",
	})
	require.NoError(t, err)

	c := result.Classification
	assert.False(t, c.IsJob)
	assert.Nil(t, c.JobType)
	assert.Nil(t, c.Seniority)
	assert.Nil(t, c.Domain)
	assert.Nil(t, c.WorkMode)
	assert.Equal(t, 0.0, c.UrgencyScore)
	assert.Equal(t, 0.5, c.SentimentScore)
	assert.Empty(t, result.TechStack)
}

func TestEnrichSentimentIndependentOfGate(t *testing.T) {
	var texts []string
	e := NewEnricher(catalog.Default(), func(text string) float64 {
		texts = append(texts, text)
		return 0.25
	})

	job, err := e.Enrich(&model.Post{PostId: "a", Title: "[Hiring] Engineer", Body: "Great team"})
	require.NoError(t, err)
	nonJob, err := e.Enrich(&model.Post{PostId: "b", Title: "Rant", Body: "Great team"})
	require.NoError(t, err)

	assert.True(t, job.Classification.IsJob)
	assert.False(t, nonJob.Classification.IsJob)
	assert.Equal(t, job.Classification.SentimentScore, nonJob.Classification.SentimentScore)
	assert.Len(t, texts, 2)
}

func TestEnrichMissingPostId(t *testing.T) {
	e := newTestEnricher()

	result, err := e.Enrich(&model.Post{Title: "[Hiring] Engineer"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post_id")
}

func TestEnrichEmptyText(t *testing.T) {
	e := newTestEnricher()

	result, err := e.Enrich(&model.Post{PostId: "p3"})
	require.NoError(t, err)
	assert.False(t, result.Classification.IsJob)
	assert.Equal(t, 0.0, result.Classification.UrgencyScore)
	assert.Empty(t, result.TechStack)
}
