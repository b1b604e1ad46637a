package notify

import (
	"context"

	"github.com/wneessen/go-mail"

	"marquee/internal/config"
	"marquee/internal/media"
)

type emailService struct {
	cfg config.Email
}

func newEmailService(cfg config.Email) *emailService {
	return &emailService{cfg: cfg}
}

func (e *emailService) Send(ctx context.Context, releases []media.Release) error {
	body, err := RenderDigest(releases)
	if err != nil {
		return deliveryError("email", err)
	}
	return e.deliver(ctx, e.cfg.Subject, body)
}

func (e *emailService) Test(ctx context.Context) error {
	return e.deliver(ctx, "marquee test", "Notification system test.\n")
}

func (e *emailService) deliver(ctx context.Context, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(e.cfg.From); err != nil {
		return deliveryError("email", err)
	}
	if err := msg.To(e.cfg.To...); err != nil {
		return deliveryError("email", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(e.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if e.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(e.cfg.Username),
			mail.WithPassword(e.cfg.Password),
		)
	}

	client, err := mail.NewClient(e.cfg.Host, opts...)
	if err != nil {
		return deliveryError("email", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return deliveryError("email", err)
	}
	return nil
}
