package sender

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/getconnects/leadrelay/internal/config"
)

// dialer is the part of gomail used here, extracted for tests.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailSender struct {
	cfg    *config.EmailConfig
	dialer dialer
}

// NewEmailSender creates an SMTP email client.
func NewEmailSender(cfg *config.EmailConfig) EmailSender {
	return &emailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers one email with a plain body and an optional HTML alternative.
func (s *emailSender) Send(ctx context.Context, to, subject, body, html string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if html != "" {
		m.AddAlternative("text/html", html)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return false, fmt.Errorf("failed to send email: %w", err)
	}

	return true, nil
}
