package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"marquee/internal/archive"
	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/notify"
	"marquee/internal/pipeline"
)

// Summary reports what one run did.
type Summary struct {
	RunID     string
	Directors int
	Skipped   int
	Dropped   int
	Rejected  map[string]int
	Announced []media.Release
	DryRun    bool
}

// Runner wires the archive, catalog, pipeline, and notifier into one batch
// run.
type Runner struct {
	cfg      *config.Config
	store    *archive.Store
	source   catalog.Source
	notifier notify.Service
	logger   *slog.Logger
	dryRun   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithDryRun makes Run fetch and filter without sending or committing.
func WithDryRun() Option {
	return func(r *Runner) {
		r.dryRun = true
	}
}

// NewRunner constructs a runner from its collaborators.
func NewRunner(cfg *config.Config, store *archive.Store, source catalog.Source, notifier notify.Service, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		cfg:      cfg,
		store:    store,
		source:   source,
		notifier: notifier,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Directors converts the configured director list to domain values,
// preserving config order.
func Directors(cfg *config.Config) []media.Director {
	directors := make([]media.Director, 0, len(cfg.Directors))
	for _, d := range cfg.Directors {
		directors = append(directors, media.Director{ID: d.ID, Name: d.Name})
	}
	return directors
}

// Run executes one batch run. An unreadable archive aborts before anything
// is fetched; a delivery failure aborts before anything is committed.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()[:8]
	logger := logging.WithComponent(r.logger, "digest").With(slog.String("run_id", runID))

	rules, err := pipeline.NewRules(r.cfg.Filters)
	if err != nil {
		return nil, fmt.Errorf("filter rules: %w", err)
	}

	seen, err := r.store.Seen(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("archive loaded", slog.Int("announced", seen.Len()))

	directors := Directors(r.cfg)
	fetched := catalog.FetchAll(ctx, r.source, directors, logger)

	summary := &Summary{
		RunID:     runID,
		Directors: len(directors),
		DryRun:    r.dryRun,
	}
	for _, filmography := range fetched {
		if filmography.Err != nil {
			summary.Skipped++
		}
	}
	if summary.Skipped == summary.Directors && summary.Directors > 0 {
		logger.Warn("every director fetch failed", slog.Int("directors", summary.Directors))
	}

	result := pipeline.Process(fetched, seen, rules)
	summary.Dropped = result.Dropped
	summary.Rejected = result.Rejected
	summary.Announced = result.Releases

	if result.Dropped > 0 {
		logger.Warn("credits without catalog id dropped", slog.Int("count", result.Dropped))
	}
	for reason, count := range result.Rejected {
		logger.Debug("credits held back", slog.String("reason", reason), slog.Int("count", count))
	}

	if len(result.Releases) == 0 {
		logger.Info("nothing new to announce",
			slog.Int("directors", summary.Directors),
			slog.Int("skipped", summary.Skipped))
		return summary, nil
	}

	if r.dryRun {
		logger.Info("dry run, skipping delivery and commit",
			slog.Int("releases", len(result.Releases)))
		return summary, nil
	}

	if err := r.notifier.Send(ctx, result.Releases); err != nil {
		if !errors.Is(err, notify.ErrPartialDelivery) {
			// No commit: the same releases must be retried next run.
			return summary, err
		}
		// At least one channel delivered; committing prevents the channels
		// that succeeded from receiving the digest twice.
		logger.Warn("digest delivered on some channels only", logging.Error(err))
	}

	if err := r.store.Commit(ctx, result.Releases); err != nil {
		return summary, fmt.Errorf("digest delivered but archive commit failed, expect duplicates next run: %w", err)
	}

	logger.Info("digest delivered",
		slog.Int("releases", len(result.Releases)),
		slog.Int("directors", summary.Directors),
		slog.Int("skipped", summary.Skipped))
	return summary, nil
}
