// Package backend is the HTTP/JSON client for the storefront API. All
// failures surface as the typed errors in pkg/apperrors so callers can render
// non-fatal UI states instead of crashing.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/pkg/apperrors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a storefront API client. The base URL is resolved once at
// start time; trailing slashes are normalized away.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// get fetches path and unmarshals the response into out. A missing resource
// maps to apperrors.ErrNotFound, everything else to *apperrors.LoadError.
func (c *Client) get(ctx context.Context, path string, query url.Values, resource string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &apperrors.LoadError{Resource: resource, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.LoadError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.LoadError{Resource: resource, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", resource, apperrors.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Backend returned error",
			zap.String("resource", resource),
			zap.Int("status", resp.StatusCode),
		)
		return &apperrors.LoadError{Resource: resource, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &apperrors.LoadError{Resource: resource, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	return nil
}
