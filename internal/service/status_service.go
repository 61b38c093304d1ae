package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/pkg/database"
	"go.uber.org/zap"
)

const (
	pingTimeout       = 5 * time.Second
	maxCollections    = 10
	maxPingErrorLen   = 50
	databaseAvailable = "✅ Available"
	databaseNotInit   = "⚠️  Available but not initialized"
)

type StatusService struct {
	store           database.Store
	databaseURLSet  bool
	databaseNameSet bool
	logger          *zap.Logger
}

func NewStatusService(store database.Store, databaseURLSet, databaseNameSet bool, logger *zap.Logger) *StatusService {
	return &StatusService{
		store:           store,
		databaseURLSet:  databaseURLSet,
		databaseNameSet: databaseNameSet,
		logger:          logger,
	}
}

// Report pings the document store. It never fails: every problem ends up as
// a human-readable string in the report.
func (s *StatusService) Report(ctx context.Context) (report *models.StatusReport) {
	report = models.NewStatusReport()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("database ping panicked", zap.Any("panic", r))
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxPingErrorLen)
		}
		report.DatabaseURL = envStatus(s.databaseURLSet)
		report.DatabaseName = envStatus(s.databaseNameSet)
	}()

	if s.store == nil {
		report.Database = describeUnavailable(nil)
		return report
	}
	if unavailable, ok := s.store.(*database.Unavailable); ok {
		report.Database = describeUnavailable(unavailable)
		return report
	}

	report.Database = databaseAvailable
	report.ConnectionStatus = models.ConnectionConnected

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	collections, err := s.store.ListCollections(pingCtx)
	if err != nil {
		s.logger.Warn("database ping failed", zap.Error(err))
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxPingErrorLen)
		return report
	}

	if len(collections) > maxCollections {
		collections = collections[:maxCollections]
	}
	if collections != nil {
		report.Collections = collections
	}
	report.Database = models.DatabaseWorking
	return report
}

func describeUnavailable(u *database.Unavailable) string {
	if u == nil || u.Reason == database.ReasonNotConfigured {
		return databaseNotInit
	}
	return "❌ Error: " + truncate(u.Reason, maxPingErrorLen)
}

func envStatus(set bool) string {
	if set {
		return models.EnvSet
	}
	return models.EnvNotSet
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
