package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/lms-service/internal/config"
)

func TestBuildOTPMessage(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "noreply@example.com",
		FromName: "Intelligent LMS",
	}

	body := string(buildOTPMessage(cfg, "ada@example.com", 4242, 5*time.Minute))

	for _, want := range []string{
		"To: ada@example.com",
		"Subject: Password Reset - OTP Code",
		"Your OTP code is: 4242",
		"expire in 5 minutes",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("message missing %q:\n%s", want, body)
		}
	}
}

func TestSendOTP_NoHostConfigured(t *testing.T) {
	sender := NewSMTPSender(config.SMTPConfig{})

	err := sender.SendOTP(context.Background(), "ada@example.com", 1234, 5*time.Minute)
	if err == nil {
		t.Fatal("expected error when smtp host is unset")
	}
}
