// Package database is the document store client. A store writes one document
// per call into a named collection and returns the generated id.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnavailable is returned by every write on a store that could not be opened.
	ErrUnavailable = errors.New("database is not available")

	ErrUnsupportedScheme = errors.New("unsupported database url scheme")
)

// ReasonNotConfigured is the Unavailable reason when no DATABASE_URL was given.
const ReasonNotConfigured = "DATABASE_URL is not set"

// Store is the document store contract the services depend on.
type Store interface {
	CreateDocument(ctx context.Context, collection string, payload any) (string, error)
	ListCollections(ctx context.Context) ([]string, error)
	// Name is the database (or bucket) name shown by the status report.
	Name() string
	Close(ctx context.Context) error
}

// Options carries what Open needs beyond the URL.
type Options struct {
	URL          string
	DatabaseName string

	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string

	ConnectTimeout time.Duration
}

// Open picks the backend from the URL scheme. It never returns a nil Store:
// when the URL is empty or the backend cannot be reached, the returned store
// is Unavailable and the error explains why.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.URL == "" {
		return NewUnavailable(ReasonNotConfigured), nil
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	u, err := url.Parse(opts.URL)
	if err != nil {
		return NewUnavailable("invalid DATABASE_URL"), fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}

	var store Store
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		store, err = NewMongoStore(ctx, opts)
	case "postgres", "postgresql":
		store, err = NewPostgresStore(ctx, opts)
	case "s3":
		store, err = NewS3Store(ctx, u, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if err != nil {
		return NewUnavailable(err.Error()), err
	}
	return store, nil
}

// fields flattens payload into its JSON object form.
func fields(payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	return doc, nil
}

// document is the stored form of a payload: its JSON fields plus bookkeeping timestamps.
func document(payload any, now time.Time) (map[string]any, error) {
	doc, err := fields(payload)
	if err != nil {
		return nil, err
	}
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}

func validCollection(collection string) error {
	if collection == "" || strings.ContainsAny(collection, "/$\x00") {
		return fmt.Errorf("invalid collection name %q", collection)
	}
	return nil
}
