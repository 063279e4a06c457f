package enrich

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jobsift/jobsift/catalog"
	"github.com/jobsift/jobsift/model"
	. "github.com/jobsift/jobsift/utils/log"
)

// Enricher turns a raw post into a classification and a technology list. It
// holds only the immutable catalog and the polarity function, so a single
// instance is safe for concurrent use.
type Enricher struct {
	catalog  *catalog.Catalog
	polarity PolarityFunc
}

// Enrichment is the full output for one post. The tech stack is kept apart
// from the classification because it persists to its own rows.
type Enrichment struct {
	Classification model.JobClassification
	TechStack      []string
}

// NewEnricher creates an Enricher with an injected polarity function.
func NewEnricher(cat *catalog.Catalog, polarity PolarityFunc) *Enricher {
	return &Enricher{catalog: cat, polarity: polarity}
}

// NewDefaultEnricher creates an Enricher backed by VADER sentiment.
func NewDefaultEnricher(cat *catalog.Catalog) *Enricher {
	return NewEnricher(cat, VaderPolarity)
}

// Enrich runs the whole pipeline over one post: job gate first, then the
// four taxonomies, tech extraction and urgency only when the gate accepts,
// sentiment unconditionally. Returns an error only when the post carries no
// id; empty title and body are valid input and classify as not-a-job.
func (e *Enricher) Enrich(post *model.Post) (*Enrichment, error) {
	if post.PostId == "" {
		return nil, errors.New("post is missing post_id")
	}

	title, body := post.Title, post.Body
	text := title + " " + body
	isJob := e.IsJob(title, body)

	classification := model.JobClassification{
		PostId:         post.PostId,
		IsJob:          isJob,
		SentimentScore: e.Sentiment(title, body),
		ClassifiedAt:   time.Now().UTC(),
	}
	techStack := []string{}

	if isJob {
		classification.JobType = MatchCategory(text, e.catalog.JobTypes)
		classification.Seniority = MatchCategory(text, e.catalog.Seniorities)
		classification.Domain = MatchCategory(text, e.catalog.Domains)
		classification.WorkMode = MatchCategory(text, e.catalog.WorkModes)
		classification.UrgencyScore = e.Urgency(title, body)
		techStack = e.ExtractTechStack(title, body)
	}

	Log.Debugf("enriched %s: is_job=%v domain=%v techs=%v",
		post.PostId, isJob, classification.Domain, techStack)

	return &Enrichment{Classification: classification, TechStack: techStack}, nil
}
