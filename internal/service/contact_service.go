package service

import (
	"context"
	"time"

	"github.com/ascendia/ascendia-api/internal/errs"
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/repository"
	"github.com/ascendia/ascendia-api/pkg/email"
	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

// ContactNotifier tells the team about a new contact message.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, n email.ContactNotification) error
}

type ContactService struct {
	contactRepo *repository.ContactMessageRepository
	notifier    ContactNotifier
	logger      *zap.Logger
}

// NewContactService wires the service. notifier may be nil to disable notifications.
func NewContactService(contactRepo *repository.ContactMessageRepository, notifier ContactNotifier, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *ContactService) SubmitContact(ctx context.Context, msg *models.ContactMessage) (string, error) {
	id, err := s.contactRepo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("failed to save contact message", zap.Error(err))
		return "", errs.NewServerError("Failed to save message", err)
	}

	s.logger.Info("contact message saved", zap.String("id", id))
	s.notify(id, msg)
	return id, nil
}

// notify runs after the response is decided and never affects it.
func (s *ContactService) notify(id string, msg *models.ContactMessage) {
	if s.notifier == nil {
		return
	}

	n := email.ContactNotification{
		ID:      id,
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	}
	if msg.Source != nil {
		n.Source = *msg.Source
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendContactNotification(ctx, n); err != nil {
			s.logger.Warn("contact notification failed", zap.String("id", id), zap.Error(err))
		}
	}()
}
