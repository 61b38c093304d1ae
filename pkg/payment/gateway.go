package payment

import "context"

const ModePayment = "payment"

// Gateway creates hosted checkout sessions.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSession, error)
}

type CheckoutSessionInput struct {
	Mode       string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

// LineItem references a registered price by PriceID, or carries an inline PriceData.
type LineItem struct {
	PriceID   string
	PriceData *PriceData
	Quantity  int64
}

type PriceData struct {
	Currency           string
	UnitAmount         int64 // cents
	ProductName        string
	ProductDescription string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
