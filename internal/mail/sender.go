package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/spec-kit/lms-service/internal/config"
)

// Sender delivers one-time codes to users.
type Sender interface {
	SendOTP(ctx context.Context, email string, code int, ttl time.Duration) error
}

// SMTPSender delivers OTP mail over plain SMTP.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender constructs a sender from config.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendOTP sends the reset code. It fails when no SMTP host is configured;
// callers decide whether delivery failure is fatal.
func (s *SMTPSender) SendOTP(_ context.Context, email string, code int, ttl time.Duration) error {
	if s.cfg.Host == "" {
		return errors.New("smtp host not configured")
	}

	body := buildOTPMessage(s.cfg, email, code, ttl)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.Username, []string{email}, body)
}

func buildOTPMessage(cfg config.SMTPConfig, email string, code int, ttl time.Duration) []byte {
	minutes := int(ttl.Minutes())
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", cfg.FromName, cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", email)
	b.WriteString("Subject: Password Reset - OTP Code\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "You have requested to reset your password.\r\n\r\n")
	fmt.Fprintf(&b, "Your OTP code is: %d\r\n\r\n", code)
	fmt.Fprintf(&b, "This code will expire in %d minutes.\r\n\r\n", minutes)
	b.WriteString("If you did not request this password reset, please ignore this email.\r\n")
	b.WriteString("Never share this OTP code with anyone!\r\n")
	return []byte(b.String())
}
