package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/media"
)

// Source adapts the TMDB client to the catalog.Source interface.
type Source struct {
	client *Client
}

var _ catalog.Source = (*Source)(nil)

// NewSource wraps a TMDB client as a catalog source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// Filmography returns the directing credits for a person. Credits are
// enriched with IMDb id and runtime from the movie details endpoint; a
// details lookup failure degrades that one credit to its bare credits-payload
// form rather than failing the director.
func (s *Source) Filmography(ctx context.Context, director media.Director) ([]media.Credit, error) {
	resp, err := s.client.PersonCredits(ctx, director.ID)
	if err != nil {
		return nil, classify(err, director)
	}

	credits := make([]media.Credit, 0, len(resp.Crew))
	detailed := make(map[int64]*MovieDetails)
	for _, crew := range resp.Crew {
		if !strings.EqualFold(crew.Job, "Director") {
			continue
		}
		credit := media.Credit{
			TMDBID:      crew.ID,
			Title:       crew.Title,
			ReleaseDate: crew.ReleaseDate,
			Director:    director.Name,
		}
		if crew.ID > 0 {
			details, ok := detailed[crew.ID]
			if !ok {
				details, err = s.client.GetMovieDetails(ctx, crew.ID)
				if err != nil {
					if ctx.Err() != nil {
						return nil, classify(err, director)
					}
					details = nil
				}
				detailed[crew.ID] = details
			}
			if details != nil {
				credit.IMDbID = strings.TrimSpace(details.IMDbID)
				credit.Runtime = details.Runtime
				if details.Title != "" {
					credit.Title = details.Title
				}
				if details.ReleaseDate != "" {
					credit.ReleaseDate = details.ReleaseDate
				}
			}
		}
		credits = append(credits, credit)
	}
	return credits, nil
}

func classify(err error, director media.Director) error {
	if StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: person %d (%s)", catalog.ErrDirectorNotFound, director.ID, director.Name)
	}
	return fmt.Errorf("%w: person %d (%s): %v", catalog.ErrSourceUnavailable, director.ID, director.Name, err)
}
