package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/mail"
)

// NotificationService reacts to domain events and drives the mail side
// channel. OTP delivery failures are logged but never fail the request that
// produced the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     mail.Sender
	logger     *zap.Logger
	otpTTL     time.Duration
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, sender mail.Sender, logger *zap.Logger, otpTTL time.Duration) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		sender:     sender,
		logger:     logger,
		otpTTL:     otpTTL,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventCoursePublished, n.handleCoursePublished)
	n.dispatcher.Subscribe(events.EventCoursePurchased, n.handleCoursePurchased)
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return nil
	}
	if n.sender == nil {
		return nil
	}
	if err := n.sender.SendOTP(ctx, payload.Email, payload.Code, n.otpTTL); err != nil {
		n.logger.Warn("failed to send OTP email",
			zap.String("email", payload.Email),
			zap.Error(err))
		return nil
	}
	n.logger.Info("OTP email sent", zap.Int64("reset_id", payload.ResetID))
	return nil
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCoursePublished(_ context.Context, event events.Event) error {
	n.logger.Info("CoursePublished", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCoursePurchased(_ context.Context, event events.Event) error {
	n.logger.Info("CoursePurchased", zap.Any("payload", event.Payload))
	return nil
}
