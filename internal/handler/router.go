package handler

import (
	"strings"

	"github.com/ascendia/ascendia-api/internal/middleware"
	"github.com/ascendia/ascendia-api/internal/service"
	"github.com/ascendia/ascendia-api/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

const appName = "Ascendia API"

// Services groups what the routes need.
type Services struct {
	Contact *service.ContactService
	Track   *service.TrackService
	Payment *service.PaymentService
	Status  *service.StatusService
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(services Services, allowOrigins string, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          ErrorHandler(logger),
		JSONDecoder:           utils.JSON.Unmarshal,
		DisableStartupMessage: true,
	})

	// Global middleware önce tanımlanmalı
	app.Use(requestid.New(requestid.Config{
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(allowOrigins)))

	validator := utils.NewValidator()

	systemHandler := NewSystemHandler(services.Status)
	contactHandler := NewContactHandler(services.Contact, validator)
	trackHandler := NewTrackHandler(services.Track, validator)
	paymentHandler := NewPaymentHandler(services.Payment, validator)

	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.Status)

	api := app.Group("/api")
	api.Get("/hello", systemHandler.Hello)
	api.Post("/contact", contactHandler.Submit)
	api.Post("/track", trackHandler.Track)
	api.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)

	return app
}

// corsConfig allows credentials only for an explicit origin list; fiber
// refuses the wildcard together with credentials.
func corsConfig(allowOrigins string) cors.Config {
	allowOrigins = strings.TrimSpace(allowOrigins)
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowCredentials: allowOrigins != "*",
	}
}
