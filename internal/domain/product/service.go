// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Catalog is the slice of the resource store the product service uses
type Catalog interface {
	ListProducts(ctx context.Context, category, query string) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Service handles catalog business logic. Catalog reads are stateless
// single-shot calls against the resource store.
type Service struct {
	catalog Catalog
	log     *logrus.Logger
}

// NewService creates a new product service
func NewService(catalog Catalog, log *logrus.Logger) *Service {
	return &Service{
		catalog: catalog,
		log:     log,
	}
}

// ListRequest narrows a catalog listing
type ListRequest struct {
	Category string `form:"category"`
	Query    string `form:"q"`
}

// List returns catalog products matching the request
func (s *Service) List(ctx context.Context, req *ListRequest) ([]Product, error) {
	products, err := s.catalog.ListProducts(ctx, req.Category, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns one product by id
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.catalog.GetProduct(ctx, id)
}

// Create validates and adds a product to the catalog
func (s *Service) Create(ctx context.Context, p *Product) (*Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	created, err := s.catalog.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.log.WithField("product_id", created.ID).Info("Product created")
	return created, nil
}

// Update validates and replaces a product record
func (s *Service) Update(ctx context.Context, p *Product) (*Product, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.catalog.UpdateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// Delete removes a product from the catalog
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.log.WithField("product_id", id).Info("Product deleted")
	return nil
}
