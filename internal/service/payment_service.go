package service

import (
	"context"

	"github.com/ascendia/ascendia-api/internal/errs"
	"github.com/ascendia/ascendia-api/internal/models"
	"github.com/ascendia/ascendia-api/pkg/payment"
	"go.uber.org/zap"
)

const (
	msgStripeNotConfigured = "Stripe is not configured. Set STRIPE_SECRET_KEY environment variable."
	msgMissingPrice        = "Provide amount (in cents) and name when not using price_id"
)

type PaymentService struct {
	gateway    payment.Gateway
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

// NewPaymentService wires the service. gateway is nil when no Stripe key is configured;
// successURL and cancelURL are the redirects used when the client sends none.
func NewPaymentService(gateway payment.Gateway, successURL, cancelURL string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway:    gateway,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// Ready fails with a config error when checkout cannot work at all.
func (s *PaymentService) Ready() error {
	if s.gateway == nil {
		return errs.NewConfigError(msgStripeNotConfigured)
	}
	return nil
}

func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	input, err := s.BuildCheckoutInput(req)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		s.logger.Error("stripe checkout session failed", zap.Error(err))
		return nil, errs.NewServerError("Stripe error", err)
	}

	s.logger.Info("checkout session created", zap.String("session_id", session.ID))
	return &models.CheckoutResponse{URL: session.URL}, nil
}

// BuildCheckoutInput turns a request into the single gateway call it maps to.
// A price_id wins outright; otherwise an inline price is built from amount and name.
func (s *PaymentService) BuildCheckoutInput(req *models.CheckoutRequest) (payment.CheckoutSessionInput, error) {
	input := payment.CheckoutSessionInput{
		Mode:       payment.ModePayment,
		SuccessURL: orDefault(req.SuccessURL, s.successURL),
		CancelURL:  orDefault(req.CancelURL, s.cancelURL),
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = models.DefaultQuantity
	}

	switch {
	case req.UsesPriceID():
		input.LineItems = []payment.LineItem{{
			PriceID:  req.PriceID,
			Quantity: quantity,
		}}
	case req.HasAdHocPrice():
		input.LineItems = []payment.LineItem{{
			PriceData: &payment.PriceData{
				Currency:           orDefault(req.Currency, models.DefaultCurrency),
				UnitAmount:         *req.Amount,
				ProductName:        req.Name,
				ProductDescription: orDefault(req.Description, models.DefaultProductDescription),
			},
			Quantity: quantity,
		}}
	default:
		return input, errs.NewValidationError(msgMissingPrice, []errs.FieldError{
			{Field: "price_id", Error: "price_id, or amount and name, is required"},
		})
	}

	return input, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
