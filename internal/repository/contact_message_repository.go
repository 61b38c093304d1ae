package repository

import (
	"context"

	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/pkg/database"
)

const ContactMessageCollection = "contactmessage"

type ContactMessageRepository struct {
	store database.Store
}

func NewContactMessageRepository(store database.Store) *ContactMessageRepository {
	return &ContactMessageRepository{store: store}
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) (string, error) {
	return r.store.CreateDocument(ctx, ContactMessageCollection, msg)
}
