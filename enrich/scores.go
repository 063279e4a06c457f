package enrich

import (
	"math"
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// PolarityFunc scores free text in [-1, 1]. The production implementation is
// VADER; tests may substitute a fixed function.
type PolarityFunc func(text string) float64

// VaderPolarity is the default polarity function, returning the VADER
// compound score.
func VaderPolarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// Sentiment scores the overall tone of a post in [-1, 1], rounded to three
// decimals. Computed for every post regardless of the job gate outcome, since
// the mood view aggregates non-job posts too.
func (e *Enricher) Sentiment(title, body string) float64 {
	return round3(e.polarity(title + ". " + body))
}

// Urgency scores how time-sensitive a job post is in [0, 1], rounded to
// three decimals. Counts how many distinct urgency phrases appear at least
// once; the score saturates once roughly a third of the urgency vocabulary
// shows up in a single post.
func (e *Enricher) Urgency(title, body string) float64 {
	text := strings.ToLower(title + " " + body)
	matches := countPhrases(text, e.catalog.Urgency)

	score := math.Min(float64(matches)/math.Max(0.3*float64(len(e.catalog.Urgency)), 1), 1.0)
	return round3(score)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
