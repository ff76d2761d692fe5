package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderCreatedEvent is published after an order is persisted.
type OrderCreatedEvent struct {
	EventID       string          `json:"event_id"`
	OrderID       uint            `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	ProductID     uint            `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ContactMessage is a storefront contact form submission.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
