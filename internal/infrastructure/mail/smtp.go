// Package mail implements the Mailer port over plain SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"strings"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// Config captures the settings for the SMTP relay.
type Config struct {
	Host string
	Port int
	From string
}

// SMTPMailer sends plaintext mail through a relay. Recipient rejection by
// the server surfaces as domain.ErrMailRejected so callers can treat it as a
// delivery failure rather than an infrastructure error.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			if rejected(err) {
				return domain.ErrMailRejected
			}
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	}
}

// rejected reports whether the relay answered with a permanent 5xx failure,
// which means the message was refused rather than the transport failing.
func rejected(err error) bool {
	var tpErr *textproto.Error
	return errors.As(err, &tpErr) && tpErr.Code/100 == 5
}
