package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"marquee/internal/config"
	"marquee/internal/media"
)

// Rejection reasons reported by Rules.Evaluate.
const (
	RejectMissingIMDbID      = "missing imdb id"
	RejectPlaceholderTitle   = "placeholder title"
	RejectShortFilm          = "short film"
	RejectMissingReleaseDate = "missing release date"
)

// Rules holds the compiled quality-filter configuration. The zero value
// accepts any credit with a non-empty title and IMDb id.
type Rules struct {
	placeholders       []*regexp.Regexp
	shortRuntime       int
	requireReleaseDate bool
}

// NewRules compiles the configured filter section.
func NewRules(cfg config.Filters) (Rules, error) {
	rules := Rules{
		shortRuntime:       cfg.ShortRuntimeMinutes,
		requireReleaseDate: cfg.RequireReleaseDate,
	}
	for _, pattern := range cfg.PlaceholderPatterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return Rules{}, fmt.Errorf("compile placeholder pattern %q: %w", pattern, err)
		}
		rules.placeholders = append(rules.placeholders, compiled)
	}
	return rules, nil
}

// IsPlaceholder reports whether title looks like a studio working title. An
// empty title counts as a placeholder: there is nothing to announce yet.
func (r Rules) IsPlaceholder(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return true
	}
	for _, pattern := range r.placeholders {
		if pattern.MatchString(title) {
			return true
		}
	}
	return false
}

// IsShort reports whether the credit is classified as a short film, either
// by the catalog's own marker or by a known runtime under the threshold. An
// unknown runtime passes: it may simply not be filed yet.
func (r Rules) IsShort(c media.Credit) bool {
	if c.ShortFilm {
		return true
	}
	return r.shortRuntime > 0 && c.Runtime > 0 && c.Runtime < r.shortRuntime
}

// Evaluate applies every quality filter. It returns ok for notifiable
// credits, otherwise the reason the credit was held back. Rejected credits
// are never archived, so they stay eligible for later runs.
func (r Rules) Evaluate(c media.Credit) (reason string, ok bool) {
	if strings.TrimSpace(c.IMDbID) == "" {
		return RejectMissingIMDbID, false
	}
	if r.IsPlaceholder(c.Title) {
		return RejectPlaceholderTitle, false
	}
	if r.IsShort(c) {
		return RejectShortFilm, false
	}
	if r.requireReleaseDate && strings.TrimSpace(c.ReleaseDate) == "" {
		return RejectMissingReleaseDate, false
	}
	return "", true
}
