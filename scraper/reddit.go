package scraper

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"

	"github.com/jobsift/jobsift/catalog"
	"github.com/jobsift/jobsift/model"
	"github.com/jobsift/jobsift/storage"
	. "github.com/jobsift/jobsift/utils/log"
)

const redditBaseUrl = "https://www.reddit.com"

// RedditScraper walks the /new listing of every target subreddit and inserts
// submissions it has not stored before. Duplicate detection is the store's
// idempotent insert; the optional seen cache only short-circuits it.
type RedditScraper struct {
	catalog *catalog.Catalog
	store   storage.Store
	client  *HttpClient
	seen    *SeenStore // nil when Redis is not configured

	baseUrl string
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditSubmission `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditSubmission struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUtc  float64 `json:"created_utc"`
	Permalink   string  `json:"permalink"`
}

func NewRedditScraper(cat *catalog.Catalog, store storage.Store, seen *SeenStore) *RedditScraper {
	return &RedditScraper{
		catalog: cat,
		store:   store,
		client:  NewDefaultHttpClient(),
		seen:    seen,
		baseUrl: redditBaseUrl,
	}
}

// ScrapeAll scrapes every configured subreddit and returns the newly stored
// posts. A failing subreddit is logged and skipped; the others still run.
func (s *RedditScraper) ScrapeAll() []model.Post {
	allPosts := []model.Post{}
	for _, sub := range s.catalog.Subreddits {
		posts, err := s.ScrapeSubreddit(sub, s.catalog.PostsPerSubreddit)
		if err != nil {
			Log.Errorf("fail to scrape r/%s: %s", sub, err)
			continue
		}
		Log.Infof("found %d new posts in r/%s", len(posts), sub)
		allPosts = append(allPosts, posts...)
	}
	Log.Infof("total new posts scraped: %d", len(allPosts))
	return allPosts
}

// ScrapeSubreddit fetches up to limit newest submissions from one subreddit
// and stores the ones not seen before.
func (s *RedditScraper) ScrapeSubreddit(name string, limit int) ([]model.Post, error) {
	uri := fmt.Sprintf("%s/r/%s/new.json?limit=%d&raw_json=1", s.baseUrl, name, limit)
	res, err := s.client.Get(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to fetch listing for r/%s", name)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to read listing body for r/%s", name)
	}

	listing := &redditListing{}
	if err := json.Unmarshal(body, listing); err != nil {
		return nil, errors.Wrapf(err, "fail to parse listing for r/%s", name)
	}

	newPosts := []model.Post{}
	newIds := []string{}
	for _, child := range listing.Data.Children {
		submission := child.Data
		if s.seen != nil && s.seen.IsSeen(submission.Id) {
			continue
		}

		post := submissionToPost(&submission)
		inserted, err := s.store.InsertPost(&post)
		if err != nil {
			Log.Errorf("fail to store post %s: %s", submission.Id, err)
			continue
		}
		newIds = append(newIds, submission.Id)
		if inserted {
			newPosts = append(newPosts, post)
			Log.Infof("scraped: [%s] %.60s", name, post.Title)
		}
	}

	if s.seen != nil {
		if err := s.seen.MarkSeen(newIds); err != nil {
			// Cache write failure is harmless, the insert already deduped.
			Log.Errorf("fail to mark posts as seen: %s", err)
		}
	}
	return newPosts, nil
}

func submissionToPost(submission *redditSubmission) model.Post {
	author := submission.Author
	if author == "" {
		author = "[deleted]"
	}
	return model.Post{
		PostId:      submission.Id,
		Title:       submission.Title,
		Body:        submission.Selftext,
		Author:      author,
		Subreddit:   submission.Subreddit,
		Score:       submission.Score,
		NumComments: submission.NumComments,
		CreatedUtc:  time.Unix(int64(submission.CreatedUtc), 0).UTC(),
		PostUrl:     redditBaseUrl + submission.Permalink,
	}
}
