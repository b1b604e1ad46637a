package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marquee/internal/config"
	"marquee/internal/media"
)

const userAgent = "marquee/0.1.0"

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func newNtfyService(cfg config.Notifications) *ntfyService {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ntfyService{
		endpoint: cfg.NtfyTopic,
		client:   &http.Client{Timeout: timeout},
	}
}

func (n *ntfyService) Send(ctx context.Context, releases []media.Release) error {
	body, err := RenderDigest(releases)
	if err != nil {
		return deliveryError("ntfy", err)
	}
	title := fmt.Sprintf("marquee - %d new release", len(releases))
	if len(releases) != 1 {
		title += "s"
	}
	return n.publish(ctx, title, body, "movie_camera,new")
}

func (n *ntfyService) Test(ctx context.Context) error {
	return n.publish(ctx, "marquee - test", "Notification system test", "test")
}

func (n *ntfyService) publish(ctx context.Context, title, message, tags string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return deliveryError("ntfy", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", title)
	if tags != "" {
		req.Header.Set("Tags", tags)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return deliveryError("ntfy", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return deliveryError("ntfy", fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
