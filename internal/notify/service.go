package notify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"marquee/internal/config"
	"marquee/internal/media"
)

// ErrDeliveryFailed indicates the digest reached no channel at all. The
// caller must not commit the archive when Send fails this way, so the same
// releases are retried on the next run.
var ErrDeliveryFailed = errors.New("digest delivery failed")

// ErrPartialDelivery indicates at least one channel delivered the digest
// while another failed. The digest was announced, so the caller should
// commit; re-sending would duplicate it on the channels that succeeded.
var ErrPartialDelivery = errors.New("partial digest delivery")

// Service is the notification surface the run orchestrator uses.
type Service interface {
	// Send delivers the digest for the given releases.
	Send(ctx context.Context, releases []media.Release) error
	// Test sends a short check message to every configured channel.
	Test(ctx context.Context) error
}

// Configured reports whether at least one delivery channel is set up.
func Configured(cfg *config.Config) bool {
	return cfg.Email.Enabled || cfg.Notifications.NtfyTopic != ""
}

// NewService builds the notification fan-out from configuration. When no
// channel is configured the digest goes to stdout: a release may only be
// archived after it has been shown somewhere.
func NewService(cfg *config.Config) Service {
	var channels []Service
	if cfg.Email.Enabled {
		channels = append(channels, newEmailService(cfg.Email))
	}
	if cfg.Notifications.NtfyTopic != "" {
		channels = append(channels, newNtfyService(cfg.Notifications))
	}
	switch len(channels) {
	case 0:
		return NewConsole(os.Stdout)
	case 1:
		return channels[0]
	default:
		return NewFanout(channels...)
	}
}

// NewFanout combines channels into one service that attempts every channel
// on each Send.
func NewFanout(channels ...Service) Service {
	return fanout(channels)
}

type fanout []Service

// Send delivers to every channel. All channels failing wraps
// ErrDeliveryFailed; a mix of success and failure wraps ErrPartialDelivery.
func (f fanout) Send(ctx context.Context, releases []media.Release) error {
	var errs []error
	for _, channel := range f {
		if err := channel.Send(ctx, releases); err != nil {
			errs = append(errs, err)
		}
	}
	switch {
	case len(errs) == 0:
		return nil
	case len(errs) == len(f):
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, errors.Join(errs...))
	default:
		return fmt.Errorf("%w: %v", ErrPartialDelivery, errors.Join(errs...))
	}
}

func (f fanout) Test(ctx context.Context) error {
	var errs []error
	for _, channel := range f {
		if err := channel.Test(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func deliveryError(channel string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDeliveryFailed, channel, err)
}
