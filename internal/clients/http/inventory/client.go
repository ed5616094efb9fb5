// Package inventory implements the inventory ledger port against the
// product-service HTTP contract.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

const defaultTimeout = 3 * time.Second

// Client drives the product-service stock endpoints. The remote side
// performs the check-and-decrement atomically; this client only translates
// statuses into the ledger outcome vocabulary. No retries.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (and its timeout).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout bounds each ledger call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// New builds an inventory ledger client with sane defaults.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("inventory ledger base URL is required")
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type stockRequest struct {
	Quantity int64 `json:"quantity"`
}

type stockResponse struct {
	ID       int64 `json:"id"`
	NewStock int64 `json:"new_stock"`
}

// DecreaseStock calls POST /products/{id}/decrease_stock. 200 carries the
// new stock level, 404 means unknown product, 400 means the stock does not
// cover the quantity. Every other answer is an UpstreamError.
func (c *Client) DecreaseStock(ctx context.Context, productID, quantity int64) (ports.StockDecrementResult, error) {
	resp, err := c.postStock(ctx, productID, quantity, "decrease_stock")
	if err != nil {
		return ports.StockDecrementResult{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body stockResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return ports.StockDecrementResult{}, &ports.UpstreamError{
				Service: ports.ServiceProduct,
				Status:  resp.StatusCode,
				Reason:  "undecodable stock response body",
			}
		}
		return ports.StockDecrementResult{Outcome: ports.StockDecremented, NewStock: body.NewStock}, nil
	case http.StatusNotFound:
		return ports.StockDecrementResult{Outcome: ports.StockProductMissing}, nil
	case http.StatusBadRequest:
		return ports.StockDecrementResult{Outcome: ports.StockInsufficient}, nil
	default:
		return ports.StockDecrementResult{}, &ports.UpstreamError{Service: ports.ServiceProduct, Status: resp.StatusCode}
	}
}

// IncreaseStock calls POST /products/{id}/increase_stock, the compensating
// action for a decrement whose order was never recorded.
func (c *Client) IncreaseStock(ctx context.Context, productID, quantity int64) error {
	resp, err := c.postStock(ctx, productID, quantity, "increase_stock")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &ports.UpstreamError{Service: ports.ServiceProduct, Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) postStock(ctx context.Context, productID, quantity int64, action string) (*http.Response, error) {
	payload, err := json.Marshal(stockRequest{Quantity: quantity})
	if err != nil {
		return nil, fmt.Errorf("encode stock request: %w", err)
	}
	url := fmt.Sprintf("%s/products/%d/%s", c.baseURL, productID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build stock request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ports.UnavailableError{Service: ports.ServiceProduct, Err: err}
	}
	return resp, nil
}

var _ ports.InventoryLedger = (*Client)(nil)
