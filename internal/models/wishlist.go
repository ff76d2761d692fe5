package models

import "time"

// WishlistItem links a customer key to a saved product.
type WishlistItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	CustomerKey string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_wishlist_customer_product"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_wishlist_customer_product"`
	CreatedAt   time.Time
}

// Wishlist is the API view of a customer's saved products.
type Wishlist struct {
	Customer   string `json:"customer"`
	ProductIDs []uint `json:"product_ids"`
}
