package service

import (
	"context"
	"time"

	"github.com/ascendia/ascendia-api/internal/errs"
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/internal/repository"
	"go.uber.org/zap"
)

type TrackService struct {
	trackRepo *repository.TrackEventRepository
	logger    *zap.Logger
}

func NewTrackService(trackRepo *repository.TrackEventRepository, logger *zap.Logger) *TrackService {
	return &TrackService{
		trackRepo: trackRepo,
		logger:    logger,
	}
}

// TrackEvent stores the event. A missing timestamp is set to the current UTC
// time; a client-supplied one is kept as is.
func (s *TrackService) TrackEvent(ctx context.Context, event *models.TrackEvent) (string, error) {
	if event.Timestamp == nil {
		now := time.Now().UTC()
		event.Timestamp = &now
	}

	id, err := s.trackRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("failed to track event", zap.String("event", event.Event), zap.Error(err))
		return "", errs.NewServerError("Failed to track event", err)
	}

	s.logger.Debug("event tracked", zap.String("event", event.Event), zap.String("id", id))
	return id, nil
}
