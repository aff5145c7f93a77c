package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/lms-service/internal/events"
)

type fakeSender struct {
	fail  bool
	sent  int
	email string
	code  int
}

func (s *fakeSender) SendOTP(_ context.Context, email string, code int, _ time.Duration) error {
	if s.fail {
		return errors.New("smtp down")
	}
	s.sent++
	s.email = email
	s.code = code
	return nil
}

func resetEvent(email string, resetID int64, code int) events.Event {
	return events.Event{
		ID:        "evt-1",
		Type:      events.EventPasswordResetRequested,
		Timestamp: time.Now(),
		Payload: events.PasswordResetRequestedPayload{
			Email:   email,
			ResetID: resetID,
			Code:    code,
		},
	}
}

func TestNotificationService_SendsOTPMail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	sender := &fakeSender{}
	svc := NewNotificationService(dispatcher, sender, zap.NewNop(), 5*time.Minute)
	svc.RegisterHandlers()

	if err := dispatcher.Publish(context.Background(), resetEvent("ada@example.com", 1, 4242)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if sender.sent != 1 {
		t.Fatalf("expected one OTP mail, got %d", sender.sent)
	}
	if sender.email != "ada@example.com" || sender.code != 4242 {
		t.Fatalf("wrong delivery: %s %d", sender.email, sender.code)
	}
}

func TestNotificationService_DeliveryFailureSwallowed(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, &fakeSender{fail: true}, zap.NewNop(), 5*time.Minute)
	svc.RegisterHandlers()

	// delivery failure must not surface to the publisher
	if err := dispatcher.Publish(context.Background(), resetEvent("ada@example.com", 1, 4242)); err != nil {
		t.Fatalf("publish: %v", err)
	}
}
