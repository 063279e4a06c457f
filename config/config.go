// Package config resolves all runtime configuration from environment
// variables once at process start. Components receive explicit values and
// never re-read the environment at call time.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Backend names a storage backend implementation. The value is resolved here
// exactly once; storage never derives it from connection-string sniffing.
type Backend string

const (
	// BackendEmbedded is the in-process SQLite backend, used for local runs
	// and tests.
	BackendEmbedded Backend = "embedded"
	// BackendNetworked is the client-server PostgreSQL backend.
	BackendNetworked Backend = "networked"
)

// Config holds all runtime configuration shared by the pipeline and the API
// server.
type Config struct {
	Backend Backend
	// DSN is a SQLite file path for the embedded backend, or a PostgreSQL
	// connection string for the networked one.
	DSN string

	RedisHost   string
	RedisPort   string
	RedisPasswd string

	ServerPort string
	CronSpec   string
}

// Load reads environment variables and returns a validated Config. Missing
// required values fail here rather than deep inside a component.
func Load() (*Config, error) {
	backend := Backend(os.Getenv("DATABASE_BACKEND"))
	if backend == "" {
		backend = BackendEmbedded
	}
	if backend != BackendEmbedded && backend != BackendNetworked {
		return nil, errors.Errorf("DATABASE_BACKEND must be %q or %q, got %q", BackendEmbedded, BackendNetworked, backend)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if backend == BackendNetworked {
			return nil, errors.New("DATABASE_DSN is required for the networked backend")
		}
		dsn = "data/jobsift.db"
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return nil, errors.Wrapf(err, "SERVER_PORT must be numeric, got %q", port)
	}

	cronSpec := os.Getenv("PIPELINE_CRON")
	if cronSpec == "" {
		cronSpec = "@every 6h"
	}

	return &Config{
		Backend:     backend,
		DSN:         dsn,
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   os.Getenv("REDIS_PORT"),
		RedisPasswd: os.Getenv("REDIS_PASSWD"),
		ServerPort:  port,
		CronSpec:    cronSpec,
	}, nil
}
