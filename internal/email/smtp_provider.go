package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	NotifyTo  string
}

// SMTPProvider delivers notifications over SMTP via gomail.
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) SendContactNotification(ctx context.Context, msg ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.FromEmail)
	m.SetHeader("To", p.cfg.NotifyTo)
	m.SetHeader("Reply-To", msg.Email)
	subject := msg.Subject
	if subject == "" {
		subject = "New contact form submission"
	}
	m.SetHeader("Subject", fmt.Sprintf("[contact] %s", subject))
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
