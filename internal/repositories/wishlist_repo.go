package repositories

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/models"
)

// WishlistRepository stores saved product ids per customer key.
type WishlistRepository interface {
	List(ctx context.Context, customer string) ([]uint, error)
	Add(ctx context.Context, customer string, productID uint) error
	Remove(ctx context.Context, customer string, productID uint) error
}

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	items map[string][]uint
	mu    sync.RWMutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{items: make(map[string][]uint)}
}

// List returns the product ids saved by customer in insertion order.
func (r *MockWishlistRepository) List(_ context.Context, customer string) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]uint{}, r.items[customer]...), nil
}

// Add saves productID for customer unless it is already saved.
func (r *MockWishlistRepository) Add(_ context.Context, customer string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.items[customer] {
		if id == productID {
			return nil
		}
	}
	r.items[customer] = append(r.items[customer], productID)
	return nil
}

// Remove deletes productID from the wishlist of customer.
func (r *MockWishlistRepository) Remove(_ context.Context, customer string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.items[customer]
	for i, id := range ids {
		if id == productID {
			r.items[customer] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product %d is not in wishlist of %s", models.ErrNotFound, productID, customer)
}
