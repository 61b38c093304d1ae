package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Document is one row of the documents table. Every collection shares the table.
type Document struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Collection string         `gorm:"index;not null"`
	Data       map[string]any `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PostgresStore struct {
	db   *gorm.DB
	name string
}

func NewPostgresStore(ctx context.Context, opts Options) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(opts.URL), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(timeoutCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.WithContext(timeoutCtx).AutoMigrate(&Document{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	name := opts.DatabaseName
	if name == "" {
		name = db.Migrator().CurrentDatabase()
	}

	return &PostgresStore{db: db, name: name}, nil
}

func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	doc, err := newDocument(collection, payload, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return "", err
	}
	return doc.ID.String(), nil
}

func (s *PostgresStore) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&Document{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	return names, err
}

func (s *PostgresStore) Name() string {
	return s.name
}

func (s *PostgresStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDocument(collection string, payload any, now time.Time) (*Document, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}

	data, err := fields(payload)
	if err != nil {
		return nil, err
	}

	return &Document{
		ID:         uuid.New(),
		Collection: collection,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
