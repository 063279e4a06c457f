package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jobsift/jobsift/config"
	"github.com/jobsift/jobsift/model"
)

// GormStore implements Store on top of gorm. The same implementation serves
// both backends; only the dialector differs.
type GormStore struct {
	db *gorm.DB
}

// NewStore opens a connection for the configured backend. For the embedded
// backend the parent directory of the database file is created on demand.
func NewStore(backend config.Backend, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch backend {
	case config.BackendEmbedded:
		if dir := filepath.Dir(dsn); dir != "." && !strings.Contains(dsn, ":memory:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "fail to create database directory %s", dir)
			}
		}
		dialector = sqlite.Open(dsn)
	case config.BackendNetworked:
		dialector = postgres.Open(dsn)
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "fail to open database")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&model.Post{}, &model.JobClassification{}, &model.TechStackEntry{})
}

func (s *GormStore) InsertPost(post *model.Post) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(post)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "fail to insert post %s", post.PostId)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) UpsertClassification(c *model.JobClassification) error {
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		UpdateAll: true,
	}).Create(c)
	return errors.Wrapf(res.Error, "fail to upsert classification for %s", c.PostId)
}

func (s *GormStore) InsertTechTags(postId string, technologies []string) error {
	entries := techEntries(postId, technologies)
	if len(entries) == 0 {
		return nil
	}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries)
	return errors.Wrapf(res.Error, "fail to insert tech tags for %s", postId)
}

func (s *GormStore) ReplaceTechTags(postId string, technologies []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postId).Delete(&model.TechStackEntry{}).Error; err != nil {
			return err
		}
		entries := techEntries(postId, technologies)
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	return errors.Wrapf(err, "fail to replace tech tags for %s", postId)
}

// techEntries maps technology names to rows, dropping duplicates within the
// input. Postgres rejects a statement that conflicts with itself, so the
// dedup cannot be left to ON CONFLICT.
func techEntries(postId string, technologies []string) []model.TechStackEntry {
	seen := make(map[string]bool, len(technologies))
	entries := []model.TechStackEntry{}
	for _, tech := range technologies {
		if seen[tech] {
			continue
		}
		seen[tech] = true
		entries = append(entries, model.TechStackEntry{PostId: postId, Technology: tech})
	}
	return entries
}

func (s *GormStore) GetUnclassifiedPosts() ([]model.Post, error) {
	var posts []model.Post
	err := s.db.
		Joins("LEFT JOIN job_classifications jc ON jc.post_id = posts.post_id").
		Where("jc.post_id IS NULL").
		Order("posts.created_utc").
		Find(&posts).Error
	return posts, errors.Wrap(err, "fail to query unclassified posts")
}

func (s *GormStore) GetAllPosts() ([]model.Post, error) {
	var posts []model.Post
	err := s.db.Order("created_utc").Find(&posts).Error
	return posts, errors.Wrap(err, "fail to query posts")
}

func (s *GormStore) Stats() (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&model.Post{}).Count(&stats.TotalPosts).Error; err != nil {
		return nil, errors.Wrap(err, "fail to count posts")
	}
	if err := s.db.Model(&model.JobClassification{}).Where("is_job = ?", true).Count(&stats.JobPosts).Error; err != nil {
		return nil, errors.Wrap(err, "fail to count job posts")
	}
	if err := s.db.Model(&model.TechStackEntry{}).Distinct("technology").Count(&stats.Technologies).Error; err != nil {
		return nil, errors.Wrap(err, "fail to count technologies")
	}
	// Average over every classified post, job or not: the mood view covers
	// the whole community.
	var avg sql.NullFloat64
	if err := s.db.Model(&model.JobClassification{}).
		Select("AVG(sentiment_score)").Scan(&avg).Error; err != nil {
		return nil, errors.Wrap(err, "fail to average sentiment")
	}
	if avg.Valid {
		stats.AvgSentiment = avg.Float64
	}
	return &stats, nil
}

func (s *GormStore) JobPosts(filter JobFilter) ([]JobPost, error) {
	query := s.jobPostQuery()
	if filter.JobType != "" {
		query = query.Where("jc.job_type = ?", filter.JobType)
	}
	if filter.Seniority != "" {
		query = query.Where("jc.seniority = ?", filter.Seniority)
	}
	if filter.Domain != "" {
		query = query.Where("jc.domain = ?", filter.Domain)
	}
	if filter.WorkMode != "" {
		query = query.Where("jc.work_mode = ?", filter.WorkMode)
	}
	if filter.Subreddit != "" {
		query = query.Where("posts.subreddit = ?", filter.Subreddit)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []JobPost
	err := query.Order("posts.created_utc DESC").Scan(&rows).Error
	return rows, errors.Wrap(err, "fail to query job posts")
}

func (s *GormStore) HotJobs(limit int) ([]JobPost, error) {
	var rows []JobPost
	err := s.jobPostQuery().
		Order("jc.urgency_score DESC, posts.score DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, errors.Wrap(err, "fail to query hot jobs")
}

func (s *GormStore) jobPostQuery() *gorm.DB {
	return s.db.Model(&model.Post{}).
		Select("posts.post_id, posts.title, posts.subreddit, posts.author, posts.score, " +
			"posts.num_comments, posts.created_utc, posts.post_url, " +
			"jc.job_type, jc.seniority, jc.domain, jc.work_mode, " +
			"jc.sentiment_score, jc.urgency_score").
		Joins("JOIN job_classifications jc ON jc.post_id = posts.post_id").
		Where("jc.is_job = ?", true)
}

func (s *GormStore) TechCounts(limit int) ([]TechCount, error) {
	var rows []TechCount
	query := s.db.Model(&model.TechStackEntry{}).
		Select("technology, COUNT(*) AS count").
		Group("technology").
		Order("count DESC, technology")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&rows).Error
	return rows, errors.Wrap(err, "fail to count tech tags")
}
