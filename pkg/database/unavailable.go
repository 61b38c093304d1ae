package database

import (
	"context"
	"fmt"
)

// Unavailable stands in for a store that is not configured or could not be reached.
type Unavailable struct {
	Reason string
}

func NewUnavailable(reason string) *Unavailable {
	return &Unavailable{Reason: reason}
}

func (u *Unavailable) CreateDocument(context.Context, string, any) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnavailable, u.Reason)
}

func (u *Unavailable) ListCollections(context.Context) ([]string, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnavailable, u.Reason)
}

func (u *Unavailable) Name() string {
	return ""
}

func (u *Unavailable) Close(context.Context) error {
	return nil
}
