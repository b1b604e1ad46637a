package pipeline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"marquee/internal/archive"
	"marquee/internal/catalog"
	"marquee/internal/media"
)

// Result is the outcome of one filtering pass.
type Result struct {
	// Releases are the credits worth announcing, ordered by director config
	// order, then release date ascending, then title.
	Releases []media.Release
	// Updated is the archive state after this run commits: the input set
	// plus every released id. Never smaller than the input set.
	Updated archive.Set
	// Dropped counts structurally invalid credits (no catalog id at all).
	Dropped int
	// Rejected counts quality-filter rejections by reason.
	Rejected map[string]int
}

type entry struct {
	dirIndex int
	credit   media.Credit
}

// Process runs the discovery-dedup-filter pass over the combined fetch
// results. Failed fetches carry no credits and are skipped. The seen set is
// the archive snapshot from run start; Process never mutates it.
func Process(fetched []catalog.Filmography, seen archive.Set, rules Rules) Result {
	index := make(map[int64]*entry)
	var entries []*entry
	result := Result{
		Updated:  seen.Clone(),
		Rejected: make(map[string]int),
	}

	// Pass 1: global dedup by catalog id, preferring the most complete
	// attribute from any occurrence.
	for dirIndex, filmography := range fetched {
		if filmography.Err != nil {
			continue
		}
		for _, credit := range filmography.Credits {
			if credit.TMDBID <= 0 {
				result.Dropped++
				continue
			}
			if existing, ok := index[credit.TMDBID]; ok {
				merge(&existing.credit, credit, rules)
				continue
			}
			e := &entry{dirIndex: dirIndex, credit: credit}
			index[credit.TMDBID] = e
			entries = append(entries, e)
		}
	}

	// Pass 2: archive filter then quality filters. Only credits that will
	// actually be announced join the updated archive.
	var releases []*entry
	for _, e := range entries {
		if seen.Contains(e.credit.TMDBID) {
			continue
		}
		if reason, ok := rules.Evaluate(e.credit); !ok {
			result.Rejected[reason]++
			continue
		}
		releases = append(releases, e)
		result.Updated.Add(e.credit.TMDBID)
	}

	sortEntries(releases)

	result.Releases = make([]media.Release, 0, len(releases))
	for _, e := range releases {
		result.Releases = append(result.Releases, media.Release{
			TMDBID:      e.credit.TMDBID,
			Title:       e.credit.Title,
			ReleaseDate: e.credit.ReleaseDate,
			IMDbID:      e.credit.IMDbID,
			Director:    e.credit.Director,
		})
	}
	return result
}

// merge folds a duplicate occurrence into the retained credit. Attribution
// and director ordering stay with the first occurrence; missing attributes
// are filled from the duplicate, and a placeholder title yields to a real
// one.
func merge(dst *media.Credit, dup media.Credit, rules Rules) {
	if dst.IMDbID == "" && dup.IMDbID != "" {
		dst.IMDbID = dup.IMDbID
	}
	if rules.IsPlaceholder(dst.Title) && !rules.IsPlaceholder(dup.Title) {
		dst.Title = dup.Title
	}
	if dst.ReleaseDate == "" && dup.ReleaseDate != "" {
		dst.ReleaseDate = dup.ReleaseDate
	}
	if dst.Runtime == 0 && dup.Runtime != 0 {
		dst.Runtime = dup.Runtime
	}
	if dup.ShortFilm {
		dst.ShortFilm = true
	}
}

func sortEntries(entries []*entry) {
	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.dirIndex != b.dirIndex {
			return a.dirIndex < b.dirIndex
		}
		at, bt := a.credit.ReleaseTime(), b.credit.ReleaseTime()
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		return collator.CompareString(a.credit.Title, b.credit.Title) < 0
	})
}
