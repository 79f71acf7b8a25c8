// Package client is a typed Go client for the laundry API. Every call resolves
// to a Result; transport, decoding and server failures are folded into it so
// callers only ever branch on Result.Success.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 15 * time.Second

// Result is the normalized outcome of one API call
type Result[T any] struct {
	Success bool            `json:"success"`
	Data    T               `json:"data"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Details []schemas.Issue `json:"details,omitempty"`
	Count   int             `json:"count,omitempty"`
}

// Empty is the payload of calls that return no data
type Empty struct{}

// Client talks to one API server
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    *time.Duration
	logger     zerolog.Logger

	Customers      *Resource[models.Customer, schemas.CustomerInput]
	Packages       *Resource[models.Package, schemas.PackageInput]
	PaymentMethods *Resource[models.PaymentMethod, schemas.PaymentMethodInput]
	Perfumes       *Resource[models.Perfume, schemas.PerfumeInput]
	Orders         *Resource[models.LaundryOrder, schemas.OrderInput]
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The client passed in is
// never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout, whichever http.Client is in use
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = &d
	}
}

// WithLogger sets the logger failures are reported to
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8080/api/v1
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}

	c.Customers = newResource[models.Customer, schemas.CustomerInput](c, "/customers", "customer", "customers")
	c.Packages = newResource[models.Package, schemas.PackageInput](c, "/packages", "package", "packages")
	c.PaymentMethods = newResource[models.PaymentMethod, schemas.PaymentMethodInput](c, "/payment-methods", "payment method", "payment methods")
	c.Perfumes = newResource[models.Perfume, schemas.PerfumeInput](c, "/perfumes", "perfume", "perfumes")
	c.Orders = newResource[models.LaundryOrder, schemas.OrderInput](c, "/orders", "order", "orders")
	return c
}

// do sends one request and decodes the envelope into a Result. fallback is
// the error reported when the server gives none.
func do[T any](ctx context.Context, c *Client, method, path string, body interface{}, fallback string) Result[T] {
	logger := c.logger.With().Str("method", method).Str("path", path).Logger()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to encode request")
			return Result[T]{Error: fallback}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build request")
		return Result[T]{Error: fallback}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Request failed")
		return Result[T]{Error: fallback}
	}
	defer resp.Body.Close()

	var result Result[T]
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("Failed to decode response")
		result = Result[T]{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		if result.Error == "" {
			result.Error = fallback
			if resp.StatusCode >= 300 {
				result.Error = fmt.Sprintf("%s (HTTP %d)", fallback, resp.StatusCode)
			}
		}
		result.Success = false
		logger.Warn().Int("status", resp.StatusCode).Str("error", result.Error).Msg("API call failed")
		return result
	}

	return result
}

// validated runs the schema for input before anything is sent
func validated[T any](input interface{}) (Result[T], bool) {
	schemas.Normalize(input)
	err := schemas.Validate(input)
	if err == nil {
		return Result[T]{}, true
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return Result[T]{Error: "Validation failed", Details: validationErr.Issues}, false
	}
	return Result[T]{Error: err.Error()}, false
}
