package notify

import (
	"context"
	"fmt"
	"io"

	"marquee/internal/media"
)

// consoleService writes the digest to a local writer. It is the delivery
// channel of last resort: used when no remote channel is configured, so
// archived releases are always shown somewhere first.
type consoleService struct {
	out io.Writer
}

// NewConsole returns a service that prints the rendered digest to out.
func NewConsole(out io.Writer) Service {
	return &consoleService{out: out}
}

func (c *consoleService) Send(ctx context.Context, releases []media.Release) error {
	body, err := RenderDigest(releases)
	if err != nil {
		return deliveryError("console", err)
	}
	if _, err := fmt.Fprintln(c.out, body); err != nil {
		return deliveryError("console", err)
	}
	return nil
}

func (c *consoleService) Test(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.out, "Notification system test."); err != nil {
		return deliveryError("console", err)
	}
	return nil
}
