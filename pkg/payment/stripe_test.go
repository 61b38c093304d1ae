package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

type fakeStripe struct {
	mu       sync.Mutex
	calls    int
	path     string
	auth     string
	form     url.Values
	status   int
	response string
}

func (f *fakeStripe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(body))

	f.mu.Lock()
	f.calls++
	f.path = r.URL.Path
	f.auth = r.Header.Get("Authorization")
	f.form = form
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.response))
}

func newTestStripe(t *testing.T, fake *fakeStripe) *StripeService {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeServiceWithBackend("sk_test_123", backend)
}

func TestCreateCheckoutSessionAdHocPrice(t *testing.T) {
	fake := &fakeStripe{
		status:   http.StatusOK,
		response: `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`,
	}
	svc := newTestStripe(t, fake)

	session, err := svc.CreateCheckoutSession(context.Background(), CheckoutSessionInput{
		Mode: ModePayment,
		LineItems: []LineItem{{
			Quantity: 1,
			PriceData: &PriceData{
				Currency:           "usd",
				UnitAmount:         1500,
				ProductName:        "Course A",
				ProductDescription: "Ascendia Course",
			},
		}},
		SuccessURL: "http://localhost:3000/?success=true",
		CancelURL:  "http://localhost:3000/?canceled=true",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, "/v1/checkout/sessions", fake.path)
	assert.Equal(t, "Bearer sk_test_123", fake.auth)
	assert.Equal(t, "payment", fake.form.Get("mode"))
	assert.Equal(t, "1500", fake.form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", fake.form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Course A", fake.form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "Ascendia Course", fake.form.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "1", fake.form.Get("line_items[0][quantity]"))
	assert.Empty(t, fake.form.Get("line_items[0][price]"))
	assert.Equal(t, "http://localhost:3000/?success=true", fake.form.Get("success_url"))
	assert.Equal(t, "http://localhost:3000/?canceled=true", fake.form.Get("cancel_url"))
}

func TestCreateCheckoutSessionPriceID(t *testing.T) {
	fake := &fakeStripe{
		status:   http.StatusOK,
		response: `{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_2"}`,
	}
	svc := newTestStripe(t, fake)

	_, err := svc.CreateCheckoutSession(context.Background(), CheckoutSessionInput{
		Mode:       ModePayment,
		LineItems:  []LineItem{{PriceID: "price_123", Quantity: 3}},
		SuccessURL: "https://app.example/ok",
		CancelURL:  "https://app.example/cancel",
	})
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, "price_123", fake.form.Get("line_items[0][price]"))
	assert.Equal(t, "3", fake.form.Get("line_items[0][quantity]"))
	assert.Empty(t, fake.form.Get("line_items[0][price_data][unit_amount]"))
}

func TestCreateCheckoutSessionErrorIsNotRetried(t *testing.T) {
	fake := &fakeStripe{
		status:   http.StatusBadRequest,
		response: `{"error":{"type":"invalid_request_error","message":"No such price: 'price_missing'"}}`,
	}
	svc := newTestStripe(t, fake)

	_, err := svc.CreateCheckoutSession(context.Background(), CheckoutSessionInput{
		Mode:      ModePayment,
		LineItems: []LineItem{{PriceID: "price_missing", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, "No such price: 'price_missing'", err.Error())

	var stripeErr *stripe.Error
	require.ErrorAs(t, err, &stripeErr)
	assert.Equal(t, http.StatusBadRequest, stripeErr.HTTPStatusCode)
	assert.Equal(t, stripe.ErrorTypeInvalidRequest, stripeErr.Type)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 1, fake.calls)
}

func TestGatewayErrorKeepsPlainErrors(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")
	assert.Same(t, plain, gatewayError(plain))

	empty := &stripe.Error{Type: stripe.ErrorTypeAPI}
	assert.Same(t, error(empty), gatewayError(empty))
}
