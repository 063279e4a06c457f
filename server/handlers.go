// Package server exposes the classified data over a small JSON API. The
// dashboard only reads these endpoints; no classification logic lives here.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jobsift/jobsift/storage"
)

const (
	defaultJobLimit  = 50
	defaultHotLimit  = 10
	defaultTechLimit = 20
)

// NewRouter builds the API router over a Store.
func NewRouter(store storage.Store) *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	api.GET("/stats", statsHandler(store))
	api.GET("/jobs", jobsHandler(store))
	api.GET("/jobs/hot", hotJobsHandler(store))
	api.GET("/techs", techsHandler(store))

	return router
}

func statsHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func jobsHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := storage.JobFilter{
			JobType:   c.Query("job_type"),
			Seniority: c.Query("seniority"),
			Domain:    c.Query("domain"),
			WorkMode:  c.Query("work_mode"),
			Subreddit: c.Query("subreddit"),
			Limit:     intQuery(c, "limit", defaultJobLimit),
		}
		jobs, err := store.JobPosts(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

func hotJobsHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := store.HotJobs(intQuery(c, "limit", defaultHotLimit))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

func techsHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		techs, err := store.TechCounts(intQuery(c, "limit", defaultTechLimit))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"techs": techs})
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
