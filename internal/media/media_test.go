package media

import (
	"testing"
	"time"
)

func TestCreditReleaseTime(t *testing.T) {
	credit := Credit{Title: "Dune: Part Two", ReleaseDate: "2024-02-27"}
	got := credit.ReleaseTime()
	want := time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ReleaseTime() = %v, want %v", got, want)
	}

	for _, date := range []string{"", "not-a-date", "2024"} {
		credit := Credit{ReleaseDate: date}
		if !credit.ReleaseTime().IsZero() {
			t.Fatalf("ReleaseTime() for %q should be zero", date)
		}
	}
}

func TestReleaseIMDbURL(t *testing.T) {
	release := Release{IMDbID: "tt15239678"}
	if got, want := release.IMDbURL(), "https://www.imdb.com/title/tt15239678/"; got != want {
		t.Fatalf("IMDbURL() = %q, want %q", got, want)
	}
}
