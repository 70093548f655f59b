// internal/store/products.go
package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/your-org/storefront/internal/domain/product"
)

// ListProducts reads the catalog, optionally filtered by category tag and
// a free-text query over title/subtitle
func (c *Client) ListProducts(ctx context.Context, category, query string) ([]product.Product, error) {
	params := url.Values{}
	if category != "" {
		params.Set("item", category)
	}
	if query != "" {
		params.Set("q", query)
	}

	data, err := c.do(ctx, http.MethodGet, "/products", params, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]product.Product](data)
}

// GetProduct reads one product by id
func (c *Client) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	data, err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	p, err := decode[product.Product](data)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct adds a product to the catalog
func (c *Client) CreateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	data, err := c.do(ctx, http.MethodPost, "/products", nil, p)
	if err != nil {
		return nil, err
	}
	created, err := decode[product.Product](data)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product record
func (c *Client) UpdateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	data, err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(p.ID), nil, p)
	if err != nil {
		return nil, err
	}
	updated, err := decode[product.Product](data)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product from the catalog
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
	return err
}
