// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a Mailer backed by a plain SMTP relay.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp is not configured")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth: auth,
		from: cfg.SMTP.From,
	}, nil
}

// Send delivers a plain-text message to a single recipient. SendMail is
// synchronous, so the context deadline is honored by running it in a
// goroutine and abandoning it on cancellation.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail send cancelled")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send mail")
		}

		return nil
	}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
