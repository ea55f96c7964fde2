// Package storefront ties the cart store, checkout calculator and backend
// client together into the flow a storefront UI drives.
package storefront

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/backend"
	"github.com/luxdrop/storefront/internal/cart"
	"github.com/luxdrop/storefront/internal/checkout"
	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/internal/tracking"
)

// ErrSubmissionInFlight rejects a duplicate submit while one is outstanding,
// the in-process equivalent of disabling the submit control. No idempotency
// key is sent, so a retry after a timeout can still create a duplicate order.
var ErrSubmissionInFlight = errors.New("order submission already in flight")

// Session is the storefront flow for one browser session. All methods run on
// the single logical thread of UI event handling.
type Session struct {
	cart       *cart.Store
	client     *backend.Client
	logger     *zap.Logger
	submitting bool
}

// NewSession creates a session over the given cart store and API client
func NewSession(cartStore *cart.Store, client *backend.Client, logger *zap.Logger) *Session {
	return &Session{
		cart:   cartStore,
		client: client,
		logger: logger,
	}
}

// Start restores the persisted cart. Invoked once at startup.
func (s *Session) Start(ctx context.Context) {
	s.cart.Restore(ctx)
}

// Cart exposes the session's cart store for UI mutation
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Totals is the display summary for the cart drawer and checkout page
type Totals struct {
	Subtotal                 float64
	Shipping                 float64
	GrandTotal               float64
	RemainingForFreeShipping float64
}

// Totals derives the current cart's display totals
func (s *Session) Totals() Totals {
	items := s.cart.Items()
	subtotal := checkout.Subtotal(items)
	return Totals{
		Subtotal:                 subtotal,
		Shipping:                 checkout.ShippingFee(subtotal),
		GrandTotal:               checkout.GrandTotal(items),
		RemainingForFreeShipping: checkout.RemainingForFreeShipping(subtotal),
	}
}

// PlaceOrder validates the cart and form, submits the order and clears the
// cart on success. On any failure the cart is left intact so the user's items
// survive and the form can be retried.
func (s *Session) PlaceOrder(ctx context.Context, form checkout.Form) (*domain.Order, error) {
	if s.submitting {
		return nil, ErrSubmissionInFlight
	}

	payload, err := checkout.BuildOrderPayload(s.cart.Items(), form)
	if err != nil {
		return nil, err
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	order, err := s.client.CreateOrder(ctx, payload)
	if err != nil {
		s.logger.Warn("Order submission failed, keeping cart", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)
	s.cart.Clear(ctx)
	return order, nil
}

// TrackOrder fetches an order and projects its status for display. A missing
// order surfaces as apperrors.ErrNotFound so the caller renders a not-found
// state rather than crashing.
func (s *Session) TrackOrder(ctx context.Context, orderID string) (*domain.Order, tracking.StatusView, error) {
	order, err := s.client.Order(ctx, orderID)
	if err != nil {
		return nil, tracking.StatusView{}, err
	}
	return order, tracking.Project(order.Status), nil
}
