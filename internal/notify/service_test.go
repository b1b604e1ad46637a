package notify_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marquee/internal/config"
	"marquee/internal/media"
	"marquee/internal/notify"
	"marquee/internal/testsupport"
)

func TestConsoleSendPrintsDigest(t *testing.T) {
	var buf bytes.Buffer
	svc := notify.NewConsole(&buf)

	releases := []media.Release{
		{TMDBID: 2, Title: "Dune: Part Two", IMDbID: "tt15239678", Director: "Denis Villeneuve"},
	}
	if err := svc.Send(context.Background(), releases); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Dune: Part Two") {
		t.Fatalf("expected digest on the console, got: %q", buf.String())
	}
}

type stubChannel struct {
	sent int
	err  error
}

func (s *stubChannel) Send(context.Context, []media.Release) error {
	s.sent++
	return s.err
}

func (s *stubChannel) Test(context.Context) error { return s.err }

func TestFanoutAttemptsEveryChannel(t *testing.T) {
	failing := &stubChannel{err: errors.New("smtp down")}
	working := &stubChannel{}
	svc := notify.NewFanout(failing, working)

	err := svc.Send(context.Background(), []media.Release{{Title: "X"}})
	if !errors.Is(err, notify.ErrPartialDelivery) {
		t.Fatalf("expected ErrPartialDelivery, got %v", err)
	}
	if errors.Is(err, notify.ErrDeliveryFailed) {
		t.Fatalf("partial delivery must not read as total failure: %v", err)
	}
	if working.sent != 1 {
		t.Fatalf("second channel should still be attempted, sent=%d", working.sent)
	}
}

func TestFanoutAllChannelsFailing(t *testing.T) {
	svc := notify.NewFanout(
		&stubChannel{err: errors.New("smtp down")},
		&stubChannel{err: errors.New("ntfy down")},
	)

	err := svc.Send(context.Background(), []media.Release{{Title: "X"}})
	if !errors.Is(err, notify.ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed when no channel delivered, got %v", err)
	}
}

func TestRenderDigestGroupsByDirector(t *testing.T) {
	releases := []media.Release{
		{TMDBID: 2, Title: "Dune: Part Two", ReleaseDate: "2024-03-01", IMDbID: "tt15239678", Director: "Denis Villeneuve"},
		{TMDBID: 3, Title: "Dune: Part Three", ReleaseDate: "2026-12-18", IMDbID: "tt33429606", Director: "Denis Villeneuve"},
		{TMDBID: 4, Title: "The Odyssey", ReleaseDate: "2026-07-17", IMDbID: "tt31434639", Director: "Christopher Nolan"},
	}

	body, err := notify.RenderDigest(releases)
	if err != nil {
		t.Fatalf("RenderDigest returned error: %v", err)
	}

	if !strings.HasPrefix(body, "3 new releases from your directors:") {
		t.Fatalf("unexpected digest header: %q", body)
	}
	if !strings.Contains(body, "Denis Villeneuve\n  - Dune: Part Two (2024-03-01)") {
		t.Fatalf("expected grouped Villeneuve section, got:\n%s", body)
	}
	if !strings.Contains(body, "https://www.imdb.com/title/tt31434639/") {
		t.Fatalf("expected IMDb link, got:\n%s", body)
	}
	if strings.Count(body, "Denis Villeneuve") != 1 {
		t.Fatalf("director header should appear once per group:\n%s", body)
	}
}

func TestRenderDigestSingularHeader(t *testing.T) {
	body, err := notify.RenderDigest([]media.Release{
		{TMDBID: 1, Title: "Solo", IMDbID: "tt0000001", Director: "A"},
	})
	if err != nil {
		t.Fatalf("RenderDigest returned error: %v", err)
	}
	if !strings.HasPrefix(body, "1 new release from") {
		t.Fatalf("expected singular header, got: %q", body)
	}
}

func TestNtfySendPostsDigest(t *testing.T) {
	var gotTitle, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		payload, _ := io.ReadAll(r.Body)
		gotBody = string(payload)
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, func(c *config.Config) {
		c.Notifications.NtfyTopic = server.URL
	})
	svc := notify.NewService(cfg)

	releases := []media.Release{
		{TMDBID: 2, Title: "Dune: Part Two", IMDbID: "tt15239678", Director: "Denis Villeneuve"},
	}
	if err := svc.Send(context.Background(), releases); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotTitle != "marquee - 1 new release" {
		t.Fatalf("unexpected ntfy title: %q", gotTitle)
	}
	if !strings.Contains(gotBody, "Dune: Part Two") {
		t.Fatalf("unexpected ntfy body: %q", gotBody)
	}
}

func TestNtfyFailureWrapsDeliveryFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, func(c *config.Config) {
		c.Notifications.NtfyTopic = server.URL
	})
	svc := notify.NewService(cfg)

	err := svc.Send(context.Background(), []media.Release{{Title: "X"}})
	if !errors.Is(err, notify.ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed wrap, got %v", err)
	}
}
