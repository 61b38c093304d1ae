package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	doc, err := newDocument("contactmessage", samplePayload{Name: "Jo"}, now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "contactmessage", doc.Collection)
	assert.Equal(t, "Jo", doc.Data["name"])
	assert.NotContains(t, doc.Data, "created_at")
	assert.Equal(t, now, doc.CreatedAt)
	assert.Equal(t, now, doc.UpdatedAt)
}

func TestNewDocumentRejectsBadCollection(t *testing.T) {
	_, err := newDocument("", samplePayload{}, time.Now())
	assert.Error(t, err)
}
