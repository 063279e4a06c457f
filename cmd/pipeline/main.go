package main

import (
	goflag "flag"

	"github.com/robfig/cron/v3"

	"github.com/jobsift/jobsift/catalog"
	"github.com/jobsift/jobsift/config"
	"github.com/jobsift/jobsift/enrich"
	"github.com/jobsift/jobsift/pipeline"
	"github.com/jobsift/jobsift/scraper"
	"github.com/jobsift/jobsift/storage"
	"github.com/jobsift/jobsift/utils/dotenv"
	. "github.com/jobsift/jobsift/utils/log"
)

var (
	skipScrape = goflag.Bool("skip-scrape", false, "skip the scrape step and only enrich existing posts")
	once       = goflag.Bool("once", false, "run a single cycle instead of scheduling")
	reclassify = goflag.Bool("reclassify", false, "re-enrich every stored post, replacing classifications and tags")
)

func main() {
	goflag.Parse()
	InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		Log.Fatal("fail to load env : ", err)
	}

	cfg, err := config.Load()
	if err != nil {
		Log.Fatal("fail to load config : ", err)
	}

	store, err := storage.NewStore(cfg.Backend, cfg.DSN)
	if err != nil {
		Log.Fatal("fail to connect database : ", err)
	}
	if err := store.Migrate(); err != nil {
		Log.Fatal("fail to migrate database : ", err)
	}
	Log.Infof("database initialized, backend=%s", cfg.Backend)

	// Redis is optional: without it, dedup falls back to the store's
	// idempotent insert.
	var seen *scraper.SeenStore
	if cfg.RedisHost != "" {
		seen, err = scraper.NewSeenStore(cfg.RedisHost, cfg.RedisPort, cfg.RedisPasswd)
		if err != nil {
			Log.Error("fail to connect redis, continuing without seen cache : ", err)
			seen = nil
		}
	}

	cat := catalog.Default()
	enricher := enrich.NewDefaultEnricher(cat)
	redditScraper := scraper.NewRedditScraper(cat, store, seen)
	p := pipeline.NewPipeline(store, enricher, redditScraper)

	if *reclassify {
		count, err := p.ReclassifyAll()
		if err != nil {
			Log.Fatal("fail to reclassify : ", err)
		}
		Log.Infof("reclassified %d posts", count)
		return
	}

	if *once {
		p.Run(*skipScrape)
		return
	}

	// Run immediately, then on the configured schedule.
	p.Run(*skipScrape)
	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, func() { p.Run(*skipScrape) }); err != nil {
		Log.Fatal("invalid PIPELINE_CRON expression: ", err)
	}
	Log.Infof("pipeline scheduled: %s", cfg.CronSpec)
	c.Run()
}
