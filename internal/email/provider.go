package email

import "context"

// Provider sends transactional mail. The submission pipeline never blocks on
// it; failures are logged, not surfaced to clients.
type Provider interface {
	SendContactNotification(ctx context.Context, msg ContactMessage) error
}

// ContactMessage is the payload of a contact-form notification.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NoopProvider is used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) SendContactNotification(ctx context.Context, msg ContactMessage) error {
	return nil
}
