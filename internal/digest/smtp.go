package digest

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ewagner/oppscout/internal/model"
)

// Sender delivers digest emails over SMTP with STARTTLS-capable
// PlainAuth (Gmail-style submission on port 587).
type Sender struct {
	cfg model.SMTPConfig
}

// NewSender creates a Sender for the given SMTP settings.
func NewSender(cfg model.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers the HTML body to the configured recipients.
func (s *Sender) Send(subject, htmlBody string) error {
	if s.cfg.Host == "" || s.cfg.From == "" || len(s.cfg.To) == 0 {
		return fmt.Errorf("smtp not configured: host, from, and to are required")
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := buildMessage(s.cfg.From, s.cfg.To, subject, htmlBody)

	if err := smtp.SendMail(addr, auth, s.cfg.From, s.cfg.To, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

func buildMessage(from string, to []string, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
