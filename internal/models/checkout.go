package models

const (
	DefaultCurrency           = "usd"
	DefaultQuantity           = 1
	DefaultProductDescription = "Ascendia Course"
)

// CheckoutRequest asks for a hosted checkout session. It is never persisted.
//
// Either PriceID, or Amount together with Name, must be given. PriceID wins
// when both are present.
type CheckoutRequest struct {
	PriceID     string `json:"price_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      *int64 `json:"amount" validate:"omitempty,min=50"` // cents
	Currency    string `json:"currency"`
	Quantity    int64  `json:"quantity" validate:"min=1"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

// NewCheckoutRequest returns a request pre-filled with defaults so that
// decoding a body only overrides what the client sent.
func NewCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Currency: DefaultCurrency,
		Quantity: DefaultQuantity,
	}
}

func (r *CheckoutRequest) UsesPriceID() bool {
	return r.PriceID != ""
}

// HasAdHocPrice reports whether an inline price can be built from the request.
func (r *CheckoutRequest) HasAdHocPrice() bool {
	return r.Amount != nil && *r.Amount > 0 && r.Name != ""
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
