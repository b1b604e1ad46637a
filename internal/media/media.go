package media

import (
	"strings"
	"time"
)

// Director identifies a person tracked by the run. The ID is the TMDB person
// id; Name is the display name from configuration.
type Director struct {
	ID   int64
	Name string
}

// Credit is a single raw filmography entry as returned by the catalog.
// Nothing about it is trusted: the same TMDB id can appear under several
// directors (co-directed films) or twice in one listing, the IMDb id may be
// absent, and the title may be a studio placeholder.
type Credit struct {
	TMDBID      int64
	Title       string
	ReleaseDate string // YYYY-MM-DD, empty when unannounced
	IMDbID      string
	Runtime     int // minutes, 0 when unknown
	ShortFilm   bool
	Director    string // attribution, display name of the fetched director
}

// ReleaseTime parses the credit's release date. The zero time is returned
// for empty or malformed dates so undated projects sort before dated ones.
func (c Credit) ReleaseTime() time.Time {
	if c.ReleaseDate == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", c.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Release is a credit that passed every filter and will be announced.
type Release struct {
	TMDBID      int64
	Title       string
	ReleaseDate string
	IMDbID      string
	Director    string
}

// IMDbURL returns the title page link derived from the IMDb id.
func (r Release) IMDbURL() string {
	id := strings.TrimSpace(r.IMDbID)
	if id == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + id + "/"
}
