package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ascendia/ascendia-api/internal/config"
	"github.com/ascendia/ascendia-api/internal/handler"
	"github.com/ascendia/ascendia-api/internal/repository"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/ascendia/ascendia-api/pkg/database"
	"github.com/ascendia/ascendia-api/pkg/email"
	"github.com/ascendia/ascendia-api/pkg/logger"
	"github.com/ascendia/ascendia-api/pkg/payment"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Config'i yükle
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	for _, warning := range cfg.Warnings {
		zapLogger.Warn("Config value ignored", zap.String("reason", warning))
	}

	// Initialize database
	store, err := database.Open(context.Background(), database.Options{
		URL:               cfg.DatabaseURL,
		DatabaseName:      cfg.DatabaseName,
		S3Endpoint:        cfg.S3Endpoint,
		S3Region:          cfg.S3Region,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		zapLogger.Warn("Database not available, writes will fail", zap.Error(err))
	} else if store.Name() != "" {
		zapLogger.Info("Database connected", zap.String("database", store.Name()))
	}

	// Repositories
	contactRepo := repository.NewContactMessageRepository(store)
	trackRepo := repository.NewTrackEventRepository(store)

	// Payment gateway
	var gateway payment.Gateway
	if cfg.StripeConfigured() {
		gateway = payment.NewStripeService(cfg.StripeSecretKey)
	} else {
		zapLogger.Warn("STRIPE_SECRET_KEY not set, checkout is disabled")
	}

	// Email notifier
	var notifier service.ContactNotifier
	if cfg.NotifierConfigured() {
		notifier = email.NewEmailService(cfg.ResendAPIKey, cfg.EmailFromAddress, cfg.ContactNotifyEmail)
	}

	// Services
	services := handler.Services{
		Contact: service.NewContactService(contactRepo, notifier, zapLogger),
		Track:   service.NewTrackService(trackRepo, zapLogger),
		Payment: service.NewPaymentService(gateway, cfg.SuccessURL(), cfg.CancelURL(), zapLogger),
		Status:  service.NewStatusService(store, cfg.DatabaseURL != "", cfg.DatabaseName != "", zapLogger),
	}

	app := handler.NewApp(services, cfg.CORSAllowOrigins, zapLogger)

	go func() {
		zapLogger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zapLogger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		zapLogger.Error("Failed to close database", zap.Error(err))
	}
}
