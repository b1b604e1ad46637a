// Package testsupport provides shared fixtures for marquee tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
	"marquee/internal/media"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp archive per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.Archive.Path = filepath.Join(base, "archive.db")
	cfg.Directors = []config.Director{
		{ID: 137427, Name: "Denis Villeneuve"},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDirectors overrides the tracked director list on the test config.
func WithDirectors(directors ...config.Director) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Directors = directors
	}
}

// WithArchivePath overrides the archive location on the test config.
func WithArchivePath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Archive.Path = path
	}
}

// Directors converts the config director list to domain values.
func Directors(cfg *config.Config) []media.Director {
	directors := make([]media.Director, 0, len(cfg.Directors))
	for _, d := range cfg.Directors {
		directors = append(directors, media.Director{ID: d.ID, Name: d.Name})
	}
	return directors
}
