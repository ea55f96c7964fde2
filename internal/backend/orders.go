package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/luxdrop/storefront/internal/checkout"
	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

// CreateOrder submits an order payload. The backend assigns the order ID and
// creates it as pending. Any non-2xx response or transport failure surfaces as
// a *apperrors.SubmissionError; the caller keeps the cart and offers a retry.
func (c *Client) CreateOrder(ctx context.Context, payload checkout.OrderPayload) (*domain.Order, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, &apperrors.SubmissionError{Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &apperrors.SubmissionError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.SubmissionError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.SubmissionError{StatusCode: resp.StatusCode}
	}

	var order domain.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, &apperrors.SubmissionError{Err: fmt.Errorf("failed to unmarshal order: %w", err)}
	}
	return &order, nil
}

// Order fetches the full order record including its current status
func (c *Client) Order(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(orderID), nil, "order", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists orders, optionally filtered by customer email
func (c *Client) Orders(ctx context.Context, userEmail string) ([]domain.Order, error) {
	query := url.Values{}
	if userEmail != "" {
		query.Set("user_email", userEmail)
	}

	var orders []domain.Order
	if err := c.get(ctx, "/api/orders", query, "orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
