package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/pkg/email"
)

// NotificationService sends user-facing email
type NotificationService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, username string) error
}

type notificationServiceImpl struct {
	mailer email.EmailService
	logger zerolog.Logger
}

// NewNotificationService creates a NotificationService over mailer
func NewNotificationService(mailer email.EmailService, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		mailer: mailer,
		logger: logger,
	}
}

// SendWelcomeEmail validates the recipient and hands the message to the relay.
// Relay failures wrap apperrors.ErrNotificationFailed.
func (s *notificationServiceImpl) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	if err := requireFields([]string{"to_email", "username"}, toEmail, username); err != nil {
		return err
	}

	if err := s.mailer.SendWelcomeEmail(ctx, toEmail, username); err != nil {
		s.logger.Warn().Err(err).Str("toEmail", toEmail).Msg("Welcome email failed")
		return err
	}
	return nil
}
