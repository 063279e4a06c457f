// Package storage implements the persistence contract over two
// interchangeable backends: embedded SQLite for local runs and tests, and
// networked PostgreSQL for production. The backend is an explicit
// configuration value resolved once at startup; callers only ever see the
// Store interface.
package storage

import (
	"time"

	"github.com/jobsift/jobsift/model"
)

// Store is the persistence contract the enrichment pipeline and the API
// server depend on. All writes are idempotent: repeating any call with the
// same identity leaves the stored state unchanged except where replacement
// is the documented semantics (UpsertClassification, ReplaceTechTags).
type Store interface {
	// Migrate creates or updates the schema. Called once at startup.
	Migrate() error

	// InsertPost stores a post, returning true when newly inserted and
	// false when the post_id already existed. The existing row is left
	// untouched on duplicate.
	InsertPost(post *model.Post) (bool, error)

	// UpsertClassification inserts the classification, or fully replaces
	// every field of the existing row for the same post_id. Last write
	// wins; fields are never merged.
	UpsertClassification(c *model.JobClassification) error

	// InsertTechTags stores each (postId, technology) pair, silently
	// skipping pairs that already exist. Tags absent from the list are not
	// removed.
	InsertTechTags(postId string, technologies []string) error

	// ReplaceTechTags atomically swaps a post's tags for the given list,
	// dropping any stale tags from a prior classification. Used by
	// explicit reclassification runs.
	ReplaceTechTags(postId string, technologies []string) error

	// GetUnclassifiedPosts returns posts with no classification row yet,
	// oldest first. This is how retries happen: a post whose enrichment
	// failed simply shows up again on the next run.
	GetUnclassifiedPosts() ([]model.Post, error)

	// GetAllPosts returns every stored post, oldest first.
	GetAllPosts() ([]model.Post, error)

	// Stats aggregates the headline numbers for the dashboard.
	Stats() (*Stats, error)

	// JobPosts returns classified job posts matching the filter, newest
	// first.
	JobPosts(filter JobFilter) ([]JobPost, error)

	// HotJobs returns the most urgent job posts, ordered by urgency score
	// then engagement score.
	HotJobs(limit int) ([]JobPost, error)

	// TechCounts returns technology tag counts over job posts, most
	// mentioned first.
	TechCounts(limit int) ([]TechCount, error)
}

// Stats is the aggregate view served by /api/stats.
type Stats struct {
	TotalPosts   int64   `json:"total_posts"`
	JobPosts     int64   `json:"job_posts"`
	Technologies int64   `json:"technologies"`
	AvgSentiment float64 `json:"avg_sentiment"`
}

// JobFilter narrows a job post listing. Zero values mean no constraint.
type JobFilter struct {
	JobType   string
	Seniority string
	Domain    string
	WorkMode  string
	Subreddit string
	Limit     int
}

// JobPost is a post joined with its classification, the row shape the read
// API serves.
type JobPost struct {
	PostId         string    `json:"post_id"`
	Title          string    `json:"title"`
	Subreddit      string    `json:"subreddit"`
	Author         string    `json:"author"`
	Score          int       `json:"score"`
	NumComments    int       `json:"num_comments"`
	CreatedUtc     time.Time `json:"created_utc"`
	PostUrl        string    `json:"post_url"`
	JobType        *string   `json:"job_type"`
	Seniority      *string   `json:"seniority"`
	Domain         *string   `json:"domain"`
	WorkMode       *string   `json:"work_mode"`
	SentimentScore float64   `json:"sentiment_score"`
	UrgencyScore   float64   `json:"urgency_score"`
}

// TechCount is one row of the technology leaderboard.
type TechCount struct {
	Technology string `json:"technology"`
	Count      int64  `json:"count"`
}
