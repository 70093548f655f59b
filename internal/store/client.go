// internal/store/client.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/your-org/storefront/internal/config"
)

// ErrNotFound is returned when the resource store has no matching record
var ErrNotFound = errors.New("record not found")

// Client talks to the remote resource store, a generic REST API exposing
// /products and /users collections with query filtering and field-wholesale
// PATCH semantics. Calls go through a circuit breaker so a dead store fails
// fast instead of piling up timed-out requests; an open breaker surfaces as
// an ordinary call error.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *logrus.Logger
}

// NewClient creates a resource store client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "resource-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// A well-formed "no such record" answer is not a store outage.
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Resource store circuit breaker state changed")
		},
	}

	return &Client{
		baseURL: cfg.Store.BaseURL,
		http: &http.Client{
			Timeout: cfg.Store.RequestTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		log:     log,
	}
}

// do performs one request against the store and returns the response body.
// Status 404 maps to ErrNotFound; other non-2xx statuses become errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("store request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read store response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrNotFound
		case resp.StatusCode >= 400:
			return nil, fmt.Errorf("store returned %d for %s %s", resp.StatusCode, method, path)
		}
		return data, nil
	})
}

func decode[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode store response: %w", err)
	}
	return out, nil
}
