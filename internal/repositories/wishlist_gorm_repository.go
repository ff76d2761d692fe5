package repositories

import (
	"context"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// List returns the product ids saved by customer in insertion order.
func (r *GORMWishlistRepository) List(ctx context.Context, customer string) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("customer_key = ?", customer).
		Order("id ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist of %s: %w", customer, err)
	}
	return ids, nil
}

// Add saves productID for customer. The unique index makes it idempotent.
func (r *GORMWishlistRepository) Add(ctx context.Context, customer string, productID uint) error {
	item := models.WishlistItem{CustomerKey: customer, ProductID: productID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add product %d to wishlist: %w", productID, err)
	}
	return nil
}

// Remove deletes productID from the wishlist of customer.
func (r *GORMWishlistRepository) Remove(ctx context.Context, customer string, productID uint) error {
	res := r.db.WithContext(ctx).
		Where("customer_key = ? AND product_id = ?", customer, productID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove product %d from wishlist: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d is not in wishlist of %s", models.ErrNotFound, productID, customer)
	}
	return nil
}
