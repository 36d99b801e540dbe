// Package client fetches the four report collections from a remote dashboard
// API. Each endpoint has an explicit decoder against the known response
// envelope — there is no generic shape sniffing: a response either matches
// the schema or its collection degrades to empty.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"stockbooks/internal/core"
)

// APIClient talks to a stockbooks-compatible REST backend.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Logger
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithToken sets a bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *APIClient) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.httpClient = hc }
}

// WithLogger replaces the default logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *APIClient) { c.log = log }
}

// New constructs an APIClient for the given base URL.
func New(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listEnvelope is the response schema shared by all list endpoints.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

func fetchList[T any](ctx context.Context, c *APIClient, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	var env listEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return env.Data, nil
}

// Sales fetches the sales collection.
func (c *APIClient) Sales(ctx context.Context) ([]core.Sale, error) {
	return fetchList[core.Sale](ctx, c, "/api/sales")
}

// Inventory fetches the inventory movement collection.
func (c *APIClient) Inventory(ctx context.Context) ([]core.InventoryMovement, error) {
	return fetchList[core.InventoryMovement](ctx, c, "/api/inventory")
}

// Customers fetches the customer collection.
func (c *APIClient) Customers(ctx context.Context) ([]core.Customer, error) {
	return fetchList[core.Customer](ctx, c, "/api/customers")
}

// Suppliers fetches the supplier collection.
func (c *APIClient) Suppliers(ctx context.Context) ([]core.Supplier, error) {
	return fetchList[core.Supplier](ctx, c, "/api/suppliers")
}

// FetchReportInputs fetches all four collections. A failed endpoint degrades
// its collection to empty rather than failing the whole fetch: the report is
// a display of possibly-partial live data, and the aggregation is well
// defined over empty collections. Every degradation is logged.
func (c *APIClient) FetchReportInputs(ctx context.Context) (core.ReportInputs, error) {
	var in core.ReportInputs
	var err error

	if in.Sales, err = c.Sales(ctx); err != nil {
		c.log.WithError(err).Warn("sales fetch failed, using empty collection")
		in.Sales = nil
	}
	if in.Inventory, err = c.Inventory(ctx); err != nil {
		c.log.WithError(err).Warn("inventory fetch failed, using empty collection")
		in.Inventory = nil
	}
	if in.Customers, err = c.Customers(ctx); err != nil {
		c.log.WithError(err).Warn("customers fetch failed, using empty collection")
		in.Customers = nil
	}
	if in.Suppliers, err = c.Suppliers(ctx); err != nil {
		c.log.WithError(err).Warn("suppliers fetch failed, using empty collection")
		in.Suppliers = nil
	}
	return in, nil
}
