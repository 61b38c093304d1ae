package models

import (
	"testing"
	"time"

	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackEventTimestampFormats(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Time
	}{
		{"rfc3339 utc", `{"event":"e","timestamp":"2024-03-01T12:00:00Z"}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", `{"event":"e","timestamp":"2024-03-01T13:00:00+01:00"}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"naive is utc", `{"event":"e","timestamp":"2024-03-01T12:00:00"}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"naive with fraction", `{"event":"e","timestamp":"2024-03-01T12:00:00.250"}`, time.Date(2024, 3, 1, 12, 0, 0, 250e6, time.UTC)},
		{"space separator", `{"event":"e","timestamp":"2024-03-01 12:00:00"}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"date only", `{"event":"e","timestamp":"2024-03-01"}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"unix seconds", `{"event":"e","timestamp":1709294400}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"unix millis", `{"event":"e","timestamp":1709294400000}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event TrackEvent
			require.NoError(t, utils.JSON.Unmarshal([]byte(tt.body), &event))
			require.NotNil(t, event.Timestamp)
			assert.True(t, tt.expected.Equal(*event.Timestamp), event.Timestamp.String())
		})
	}
}

func TestTrackEventMissingOrNullTimestamp(t *testing.T) {
	for _, body := range []string{`{"event":"e"}`, `{"event":"e","timestamp":null}`} {
		var event TrackEvent
		require.NoError(t, utils.JSON.Unmarshal([]byte(body), &event))
		assert.Nil(t, event.Timestamp, body)
		assert.Equal(t, "e", event.Event)
	}
}

func TestTrackEventRejectsBadTimestamp(t *testing.T) {
	for _, body := range []string{`{"event":"e","timestamp":"yesterday"}`, `{"event":"e","timestamp":true}`} {
		var event TrackEvent
		assert.Error(t, utils.JSON.Unmarshal([]byte(body), &event), body)
	}
}

func TestTrackEventFieldsAreCaseSensitive(t *testing.T) {
	var event TrackEvent
	require.NoError(t, utils.JSON.Unmarshal([]byte(`{"EVENT":"e","path":"/","meta":{"Button":"hero"}}`), &event))
	assert.Empty(t, event.Event)
	require.NotNil(t, event.Path)
	assert.Equal(t, "hero", event.Meta["Button"])
}
