package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	portmailer "github.com/avelar/taskhub/internal/port/mailer"
)

var _ portmailer.Mailer = (*Mailer)(nil)

// Config holds SMTP delivery settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// ResetURL is the frontend page that accepts the token as a query parameter.
	ResetURL string
}

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	client *mail.Client
	cfg    Config
}

func New(cfg Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return &Mailer{client: client, cfg: cfg}, nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, email, token string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject("Reset your password")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link expires in one hour.\n\n"+
			"%s?token=%s\n\n"+
			"If you did not request this, you can ignore this email.",
		m.cfg.ResetURL, token,
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending reset email: %w", err)
	}
	return nil
}
