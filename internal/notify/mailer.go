// internal/notify/mailer.go
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/tylertidwell91-git/ouachitawater/internal/config"
)

// Mailer sends a single message through the relay.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers messages through the configured SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds the relay client. Auth is only attached when both
// user and password are configured; the relay may be an open internal one.
func NewSMTPMailer(cfg config.SMTPConfig, from string) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(30 * time.Second),
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.User != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("notify: relay client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

// Send delivers one message with a plain-text body and an HTML
// alternative part.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("notify: from address: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("notify: to address: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Text)
	mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("notify: send to %s: %w", msg.To, err)
	}
	return nil
}
