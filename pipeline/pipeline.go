// Package pipeline is the driver tying the collaborators together: scrape,
// enrich every post that has no classification yet, persist the results, and
// report counts. A post that fails stays unclassified and is picked up again
// on the next run.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/jobsift/jobsift/enrich"
	"github.com/jobsift/jobsift/model"
	"github.com/jobsift/jobsift/scraper"
	"github.com/jobsift/jobsift/storage"
	. "github.com/jobsift/jobsift/utils/log"
)

type Pipeline struct {
	store    storage.Store
	enricher *enrich.Enricher
	scraper  *scraper.RedditScraper // nil disables the scrape step
}

// RunReport summarizes one pipeline run.
type RunReport struct {
	RunId     string
	Scraped   int
	Attempted int
	Enriched  int
}

func NewPipeline(store storage.Store, enricher *enrich.Enricher, redditScraper *scraper.RedditScraper) *Pipeline {
	return &Pipeline{store: store, enricher: enricher, scraper: redditScraper}
}

// Run executes one full cycle: scrape (unless skipped), then enrich and
// store every unclassified post. Per-post failures are logged and skipped,
// never aborting the batch.
func (p *Pipeline) Run(skipScrape bool) *RunReport {
	report := &RunReport{RunId: uuid.New().String()}
	runLog := Log.WithField("run_id", report.RunId)

	if skipScrape || p.scraper == nil {
		runLog.Info("skipping scrape step")
	} else {
		runLog.Info("step 1: scraping reddit")
		report.Scraped = len(p.scraper.ScrapeAll())
	}

	runLog.Info("step 2: enriching posts")
	unclassified, err := p.store.GetUnclassifiedPosts()
	if err != nil {
		runLog.Errorf("fail to fetch unclassified posts: %s", err)
		return report
	}
	report.Attempted = len(unclassified)
	runLog.Infof("found %d unclassified posts", len(unclassified))

	report.Enriched = p.enrichAndStore(unclassified, false)

	runLog.Infof("pipeline complete: %d scraped, %d/%d enriched",
		report.Scraped, report.Enriched, report.Attempted)
	return report
}

// ReclassifyAll re-runs enrichment over every stored post, replacing each
// classification and swapping tech tags atomically so tags from the previous
// run cannot linger.
func (p *Pipeline) ReclassifyAll() (int, error) {
	posts, err := p.store.GetAllPosts()
	if err != nil {
		return 0, err
	}
	Log.Infof("reclassifying %d posts", len(posts))
	return p.enrichAndStore(posts, true), nil
}

func (p *Pipeline) enrichAndStore(posts []model.Post, replaceTags bool) int {
	enriched := 0
	for i := range posts {
		post := posts[i]

		result, err := p.enricher.Enrich(&post)
		if err != nil {
			Log.Errorf("fail to enrich post %s: %s", post.PostId, err)
			continue
		}

		if err := p.store.UpsertClassification(&result.Classification); err != nil {
			Log.Errorf("fail to store classification for %s: %s", post.PostId, err)
			continue
		}

		if replaceTags {
			err = p.store.ReplaceTechTags(post.PostId, result.TechStack)
		} else if len(result.TechStack) > 0 {
			err = p.store.InsertTechTags(post.PostId, result.TechStack)
		}
		if err != nil {
			Log.Errorf("fail to store tech tags for %s: %s", post.PostId, err)
			continue
		}

		enriched++
	}
	return enriched
}
