// Package testutil holds testify mocks for the external collaborators.
package testutil

import (
	"context"

	"github.com/ascendia/ascendia-api/pkg/email"
	"github.com/ascendia/ascendia-api/pkg/payment"
	"github.com/stretchr/testify/mock"
)

// --- Document store ---
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	args := m.Called(ctx, collection, payload)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Name() string {
	return m.Called().String(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Payment gateway ---
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, input payment.CheckoutSessionInput) (*payment.CheckoutSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CheckoutSession), args.Error(1)
}

// --- Contact notifier ---

// FakeNotifier records notifications on a channel so tests can wait for the
// asynchronous send.
type FakeNotifier struct {
	Sent chan email.ContactNotification
	Err  error
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{Sent: make(chan email.ContactNotification, 8)}
}

func (f *FakeNotifier) SendContactNotification(_ context.Context, n email.ContactNotification) error {
	f.Sent <- n
	return f.Err
}
