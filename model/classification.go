package model

import (
	"time"
)

/*

JobClassification is the enrichment result for exactly one Post

PostId: the classified post, unique (at most one row per post)
IsJob: whether the post is a genuine job listing
JobType, Seniority, Domain, WorkMode: single category per taxonomy, nil when
	unknown; always nil when IsJob is false
SentimentScore: polarity in [-1, 1], computed for every post regardless of IsJob
UrgencyScore: [0, 1], forced to 0 when IsJob is false
ClassifiedAt: when this classification was produced

Recomputation replaces the whole row (upsert, never a field merge).
*/
type JobClassification struct {
	PostId         string    `gorm:"primaryKey" json:"post_id"`
	IsJob          bool      `json:"is_job"`
	JobType        *string   `json:"job_type"`
	Seniority      *string   `json:"seniority"`
	Domain         *string   `json:"domain"`
	WorkMode       *string   `json:"work_mode"`
	SentimentScore float64   `json:"sentiment_score"`
	UrgencyScore   float64   `json:"urgency_score"`
	ClassifiedAt   time.Time `json:"classified_at"`
}

// TechStackEntry associates one technology name with one post. The composite
// primary key makes the (post, technology) pair unique at the schema level.
type TechStackEntry struct {
	PostId     string `gorm:"primaryKey" json:"post_id"`
	Technology string `gorm:"primaryKey" json:"technology"`
}
