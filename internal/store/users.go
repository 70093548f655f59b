// internal/store/users.go
package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/your-org/storefront/internal/domain/user"
)

// GetUser reads the full identity record, including the embedded cart,
// wishlist and order history
func (c *Client) GetUser(ctx context.Context, id string) (*user.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	u, err := decode[user.User](data)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// PatchUser sends a partial update for the record. The store replaces the
// named fields wholesale; there is no array diffing and no version check,
// so the last write wins.
func (c *Client) PatchUser(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), nil, fields)
	return err
}

// CreateUser creates a new identity record
func (c *Client) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/users", nil, u)
	if err != nil {
		return nil, err
	}
	created, err := decode[user.User](data)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByEmail returns the records matching an email address
func (c *Client) FindByEmail(ctx context.Context, email string) ([]user.User, error) {
	query := url.Values{"email": {email}}
	data, err := c.do(ctx, http.MethodGet, "/users", query, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]user.User](data)
}

// CheckCredentials asks the store for the zero-or-one record matching the
// email/password pair. The credential comparison happens store-side; a nil
// result means the credentials did not match.
func (c *Client) CheckCredentials(ctx context.Context, email, password string) (*user.User, error) {
	query := url.Values{
		"email":    {email},
		"password": {password},
	}
	data, err := c.do(ctx, http.MethodGet, "/users", query, nil)
	if err != nil {
		return nil, err
	}
	matches, err := decode[[]user.User](data)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("credential check matched %d records", len(matches))
	}
	return &matches[0], nil
}

// ListUsers reads every identity record
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]user.User](data)
}
