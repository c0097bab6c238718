package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/partsquest/cli/internal/client/models"
	"github.com/partsquest/cli/internal/logging"
)

// HTTPClient implements Client over the backend's REST/JSON interface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a gateway for the backend at baseURL. Every request
// carries the timeout, the bearer token from tokens when present, and a
// fresh X-Request-ID for log correlation.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "gateway"),
	}
}

// do executes one request/response cycle. A non-nil in is sent as the JSON
// body; a non-nil out receives the decoded 2xx body. Statuses 401 and 403
// come back as ErrUnauthorized and ErrSubscriptionRequired, any other
// non-2xx as *APIError, and transport failures as ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Info(ctx, "unauthorized", "method", method, "path", path, "request_id", requestID)
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		c.log.Info(ctx, "subscription gate", "method", method, "path", path, "request_id", requestID)
		return ErrSubscriptionRequired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req ProfileUpdate) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/profile", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) ListPartRequests(ctx context.Context) ([]models.PartRequest, error) {
	var out struct {
		PartRequests []models.PartRequest `json:"part_requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/part-requests", nil, &out); err != nil {
		return nil, err
	}
	return out.PartRequests, nil
}

func (c *HTTPClient) CreatePartRequest(ctx context.Context, req models.NewPartRequest) (*models.PartRequest, error) {
	var out models.PartRequest
	if err := c.do(ctx, http.MethodPost, "/api/part-requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, priceID string) (string, error) {
	in := struct {
		PriceID string `json:"price_id"`
	}{priceID}

	var out struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/stripe/create-checkout-session", in, &out); err != nil {
		return "", err
	}
	return out.CheckoutURL, nil
}
