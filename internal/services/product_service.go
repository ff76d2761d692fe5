package services

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all products, or those in category unless it is empty or "all".
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.GetAll(ctx, category)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates fields and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, fields models.ProductFields) (*models.Product, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	var product models.Product
	fields.Apply(&product)
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces every editable field of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, fields models.ProductFields) (*models.Product, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	product := models.Product{ID: id}
	fields.Apply(&product)
	if err := s.repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// SeedCatalog inserts the sample catalog when no products exist yet and
// returns how many products were added.
func (s *ProductService) SeedCatalog(ctx context.Context, catalog []models.ProductFields) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, fields := range catalog {
		if _, err := s.CreateProduct(ctx, fields); err != nil {
			return i, fmt.Errorf("failed to seed product %q: %w", fields.Name, err)
		}
	}
	return len(catalog), nil
}
