package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/catalog"
	"github.com/jobsift/jobsift/config"
	"github.com/jobsift/jobsift/storage"
)

const listingFixture = `{
	"data": {
		"children": [
			{"data": {
				"id": "abc123",
				"title": "[Hiring] Backend Engineer",
				"selftext": "Remote role, apply now",
				"author": "recruiter",
				"subreddit": "forhire",
				"score": 42,
				"num_comments": 7,
				"created_utc": 1717243200.0,
				"permalink": "/r/forhire/comments/abc123/hiring_backend_engineer/"
			}},
			{"data": {
				"id": "def456",
				"title": "Rant about interviews",
				"selftext": "",
				"author": "",
				"subreddit": "forhire",
				"score": 3,
				"num_comments": 1,
				"created_utc": 1717246800.0,
				"permalink": "/r/forhire/comments/def456/rant/"
			}}
		]
	}
}`

func newScraperTestStore(t *testing.T) storage.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	store, err := storage.NewStore(config.BackendEmbedded, dsn)
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	return store
}

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, listingFixture)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestScrapeSubredditMapsSubmissions(t *testing.T) {
	store := newScraperTestStore(t)
	ts := newFixtureServer(t)

	s := NewRedditScraper(catalog.Default(), store, nil)
	s.baseUrl = ts.URL

	posts, err := s.ScrapeSubreddit("forhire", 100)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "abc123", first.PostId)
	assert.Equal(t, "[Hiring] Backend Engineer", first.Title)
	assert.Equal(t, "Remote role, apply now", first.Body)
	assert.Equal(t, "recruiter", first.Author)
	assert.Equal(t, "forhire", first.Subreddit)
	assert.Equal(t, 42, first.Score)
	assert.Equal(t, 7, first.NumComments)
	assert.Equal(t, int64(1717243200), first.CreatedUtc.Unix())
	assert.Equal(t, redditBaseUrl+"/r/forhire/comments/abc123/hiring_backend_engineer/", first.PostUrl)

	// Deleted accounts come through as empty authors.
	assert.Equal(t, "[deleted]", posts[1].Author)
}

func TestScrapeSubredditSkipsAlreadyStored(t *testing.T) {
	store := newScraperTestStore(t)
	ts := newFixtureServer(t)

	s := NewRedditScraper(catalog.Default(), store, nil)
	s.baseUrl = ts.URL

	posts, err := s.ScrapeSubreddit("forhire", 100)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// Second pass over the same listing stores nothing new.
	posts, err = s.ScrapeSubreddit("forhire", 100)
	require.NoError(t, err)
	assert.Empty(t, posts)

	unclassified, err := store.GetUnclassifiedPosts()
	require.NoError(t, err)
	assert.Len(t, unclassified, 2)
}

func TestScrapeSubredditBadStatus(t *testing.T) {
	store := newScraperTestStore(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(ts.Close)

	s := NewRedditScraper(catalog.Default(), store, nil)
	s.baseUrl = ts.URL

	_, err := s.ScrapeSubreddit("forhire", 100)
	require.Error(t, err)
}
