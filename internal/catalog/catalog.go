package catalog

import (
	"context"
	"errors"
	"log/slog"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// ErrSourceUnavailable indicates the catalog could not be reached or refused
// the request. The affected director is skipped for this run.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// ErrDirectorNotFound indicates the catalog has no person with the configured
// id. The affected director is skipped for this run.
var ErrDirectorNotFound = errors.New("director not found")

// Source returns the known filmography for a director. Implementations own
// all transport concerns; returned errors wrap ErrSourceUnavailable or
// ErrDirectorNotFound.
type Source interface {
	Filmography(ctx context.Context, director media.Director) ([]media.Credit, error)
}

// Filmography is the tagged result of fetching one director. Either Credits
// or Err is populated, never both.
type Filmography struct {
	Director media.Director
	Credits  []media.Credit
	Err      error
}

// FetchAll fetches every configured director sequentially, preserving config
// order. A failed director is logged and carried as a tagged failure; it
// never aborts the remaining fetches.
func FetchAll(ctx context.Context, src Source, directors []media.Director, logger *slog.Logger) []Filmography {
	results := make([]Filmography, 0, len(directors))
	for _, director := range directors {
		if err := ctx.Err(); err != nil {
			results = append(results, Filmography{Director: director, Err: err})
			continue
		}
		credits, err := src.Filmography(ctx, director)
		if err != nil {
			logger.Warn("director fetch failed",
				slog.String("director", director.Name),
				slog.Int64("person_id", director.ID),
				logging.Error(err))
			results = append(results, Filmography{Director: director, Err: err})
			continue
		}
		logger.Debug("director fetched",
			slog.String("director", director.Name),
			slog.Int("credits", len(credits)))
		results = append(results, Filmography{Director: director, Credits: credits})
	}
	return results
}
