package repository

import (
	"context"

	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/pkg/database"
)

const TrackEventCollection = "trackevent"

type TrackEventRepository struct {
	store database.Store
}

func NewTrackEventRepository(store database.Store) *TrackEventRepository {
	return &TrackEventRepository{store: store}
}

func (r *TrackEventRepository) Create(ctx context.Context, event *models.TrackEvent) (string, error) {
	return r.store.CreateDocument(ctx, TrackEventCollection, event)
}
