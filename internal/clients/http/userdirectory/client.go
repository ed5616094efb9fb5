// Package userdirectory implements the user lookup port against the
// user-service HTTP contract.
package userdirectory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

const defaultTimeout = 3 * time.Second

// Client calls GET /users/{id} on the user directory. It applies a bounded
// timeout and never retries; a failed call fails the whole attempt.
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

// WithTimeout bounds each lookup call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// New builds a user directory client with sane defaults.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("user directory base URL is required")
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

// LookupUser confirms the user id exists. 200 means found, 404 means not
// found, transport failures map to UnavailableError, anything else to
// UpstreamError.
func (c *Client) LookupUser(ctx context.Context, userID int64) (ports.UserLookupOutcome, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build user lookup request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &ports.UnavailableError{Service: ports.ServiceUser, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return ports.UserFound, nil
	case http.StatusNotFound:
		return ports.UserNotFound, nil
	default:
		return "", &ports.UpstreamError{Service: ports.ServiceUser, Status: resp.StatusCode}
	}
}

var _ ports.UserDirectory = (*Client)(nil)
