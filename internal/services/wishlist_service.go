package services

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// WishlistService keeps per-customer sets of saved products.
type WishlistService struct {
	repo        repositories.WishlistRepository
	productRepo repositories.ProductRepository
}

// NewWishlistService creates a WishlistService.
func NewWishlistService(repo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{repo: repo, productRepo: productRepo}
}

// Get returns the saved product ids of customer, oldest first.
func (s *WishlistService) Get(ctx context.Context, customer string) (*models.Wishlist, error) {
	if err := checkCustomerKey(customer); err != nil {
		return nil, err
	}
	ids, err := s.repo.List(ctx, customer)
	if err != nil {
		return nil, err
	}
	return &models.Wishlist{Customer: customer, ProductIDs: ids}, nil
}

// Add saves productID for customer. Adding a saved product again is a no-op.
func (s *WishlistService) Add(ctx context.Context, customer string, productID uint) (*models.Wishlist, error) {
	if err := checkCustomerKey(customer); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, customer, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, customer)
}

// Remove drops productID from the wishlist of customer.
func (s *WishlistService) Remove(ctx context.Context, customer string, productID uint) (*models.Wishlist, error) {
	if err := checkCustomerKey(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Remove(ctx, customer, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, customer)
}

func checkCustomerKey(customer string) error {
	if strings.TrimSpace(customer) == "" || len(customer) > 100 {
		return fmt.Errorf("%w: customer key must be 1-100 characters", models.ErrValidation)
	}
	return nil
}
