// Package mail provides out-of-band delivery of password reset links.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings for outgoing mail.
type Config struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
}

// LoadConfig reads the SMTP configuration from environment variables.
// Port defaults to 587 when SMTP_PORT is unset or malformed.
func LoadConfig() Config {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}
	return Config{
		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: port,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// ResetMailer sends password reset links over SMTP.
// When SMTP is not configured, the link is logged at Info level for
// operator visibility instead. The link is never returned to the client.
type ResetMailer struct {
	cfg Config
}

// NewResetMailer creates a new ResetMailer with the given configuration.
func NewResetMailer(cfg Config) *ResetMailer {
	return &ResetMailer{cfg: cfg}
}

// configured returns true if enough SMTP settings are present to send mail.
func (m *ResetMailer) configured() bool {
	return m.cfg.SMTPHost != "" && m.cfg.From != ""
}

// SendPasswordReset delivers the reset link to the given address.
func (m *ResetMailer) SendPasswordReset(_ context.Context, to, link string) error {
	if !m.configured() {
		// 開発環境向けフォールバック: リンクをログにのみ出力する
		slog.Info("smtp not configured, logging password reset link", "email", to, "link", link)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset request")
	msg.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below within one hour to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this message.\n", link))

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	slog.Info("password reset mail sent", "email", to)
	return nil
}
