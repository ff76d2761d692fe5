package services

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/models"

	"go.uber.org/zap"
)

// ContactService records storefront contact form submissions.
type ContactService struct {
	publisher EventPublisher
	logger    *zap.Logger
}

// NewContactService creates a ContactService. publisher may be nil.
func NewContactService(publisher EventPublisher, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{publisher: publisher, logger: logger}
}

// Submit logs the message and forwards it to the broker when one is configured.
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: name and message are required", models.ErrValidation)
	}
	s.logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject))

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to forward contact message: %w", err)
	}
	return nil
}
