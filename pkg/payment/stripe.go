package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

type StripeService struct {
	api *client.API
}

// NewStripeService returns a gateway bound to secretKey. Network retries are
// disabled: a failed call is reported to the caller immediately.
func NewStripeService(secretKey string) *StripeService {
	return newStripeServiceWithBackend(secretKey, stripe.GetBackendWithConfig(
		stripe.APIBackend,
		&stripe.BackendConfig{
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
		},
	))
}

func newStripeServiceWithBackend(secretKey string, backend stripe.Backend) *StripeService {
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &StripeService{api: api}
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSession, error) {
	params := checkoutSessionParams(input)
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, gatewayError(err)
	}

	return &CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

func checkoutSessionParams(input CheckoutSessionInput) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(input.Mode),
		SuccessURL: stripe.String(input.SuccessURL),
		CancelURL:  stripe.String(input.CancelURL),
	}

	for _, item := range input.LineItems {
		lineItem := &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
		}
		if item.PriceData != nil {
			lineItem.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(item.PriceData.Currency),
				UnitAmount: stripe.Int64(item.PriceData.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.PriceData.ProductName),
					Description: stripe.String(item.PriceData.ProductDescription),
				},
			}
		} else {
			lineItem.Price = stripe.String(item.PriceID)
		}
		params.LineItems = append(params.LineItems, lineItem)
	}

	return params
}

// StripeError keeps the API error but reports only its human-readable message.
type StripeError struct {
	Err *stripe.Error
}

func (e *StripeError) Error() string {
	return e.Err.Msg
}

func (e *StripeError) Unwrap() error {
	return e.Err
}

func gatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return &StripeError{Err: stripeErr}
	}
	return err
}
