package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ascendia/ascendia-api/pkg/utils"
)

// TrackEvent is an analytics event from the landing page, e.g. page_view or cta_click.
// Stored in the "trackevent" collection.
type TrackEvent struct {
	Event     string         `json:"event" bson:"event" validate:"required"`
	Path      *string        `json:"path" bson:"path"`
	Meta      map[string]any `json:"meta" bson:"meta"`
	UserID    *string        `json:"user_id" bson:"user_id"`
	SessionID *string        `json:"session_id" bson:"session_id"`
	Timestamp *time.Time     `json:"timestamp" bson:"timestamp"`
}

// ApplyDefaults fills schema defaults. The timestamp is left alone: the track
// service decides it, so an omitted timestamp is still nil here.
func (e *TrackEvent) ApplyDefaults() {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
}

type trackEventJSON struct {
	Event     string          `json:"event"`
	Path      *string         `json:"path"`
	Meta      map[string]any  `json:"meta"`
	UserID    *string         `json:"user_id"`
	SessionID *string         `json:"session_id"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// UnmarshalJSON accepts the timestamp in the forms browsers and SDKs send:
// RFC 3339, ISO 8601 without a zone (read as UTC), a bare date, or unix seconds.
func (e *TrackEvent) UnmarshalJSON(data []byte) error {
	var raw trackEventJSON
	if err := utils.JSON.Unmarshal(data, &raw); err != nil {
		return err
	}

	ts, err := parseTimestamp(raw.Timestamp)
	if err != nil {
		return err
	}

	*e = TrackEvent{
		Event:     raw.Event,
		Path:      raw.Path,
		Meta:      raw.Meta,
		UserID:    raw.UserID,
		SessionID: raw.SessionID,
		Timestamp: ts,
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Unix values above this are milliseconds.
const unixMillisThreshold = 2e10

func parseTimestamp(raw json.RawMessage) (*time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] != '"' {
		seconds, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("timestamp: invalid datetime %s", raw)
		}
		if math.Abs(seconds) > unixMillisThreshold {
			seconds /= 1000
		}
		whole, frac := math.Modf(seconds)
		ts := time.Unix(int64(whole), int64(frac*1e9)).UTC()
		return &ts, nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}
	for _, layout := range timestampLayouts {
		// Layouts without a zone parse as UTC.
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("timestamp: invalid datetime %q", value)
}
