package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is recorded on the order but never processed.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

// ParseOrderStatus accepts exactly the three known statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: invalid order status %q", ErrValidation, s)
	}
}

// ParsePaymentMethod accepts COD or Online.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch pm := PaymentMethod(s); pm {
	case PaymentCOD, PaymentOnline:
		return pm, nil
	default:
		return "", fmt.Errorf("%w: invalid payment method %q", ErrValidation, s)
	}
}

// Order is a placed customer order. ProductName and TotalPrice are copied from
// the product at creation and never re-derived.
type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName  string          `json:"customer_name" gorm:"type:varchar(200);not null"`
	Phone         string          `json:"phone" gorm:"type:varchar(50);not null"`
	Email         string          `json:"email" gorm:"type:varchar(255);not null"`
	CNIC          string          `json:"cnic" gorm:"column:cnic;type:varchar(50);not null"`
	Address       string          `json:"address" gorm:"type:text;not null"`
	ProductID     uint            `json:"product_id" gorm:"not null;index"`
	ProductName   string          `json:"product_name" gorm:"type:varchar(200);not null"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:numeric(14,2);not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"type:varchar(16);not null"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time       `json:"-"`
}

// Validate enforces the creation invariants of an order.
func (o *Order) Validate() error {
	required := []struct{ name, value string }{
		{"customer_name", o.CustomerName},
		{"phone", o.Phone},
		{"email", o.Email},
		{"cnic", o.CNIC},
		{"address", o.Address},
		{"product_name", o.ProductName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, r.name)
		}
	}
	if o.ProductID == 0 {
		return fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if o.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", ErrValidation, o.Quantity)
	}
	if o.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: total_price must not be negative", ErrValidation)
	}
	if _, err := ParsePaymentMethod(string(o.PaymentMethod)); err != nil {
		return err
	}
	if _, err := ParseOrderStatus(string(o.Status)); err != nil {
		return err
	}
	return nil
}

// OrderInput is what the order store needs to place an order: the customer
// details plus the product snapshot resolved by the caller.
type OrderInput struct {
	CustomerName  string
	Phone         string
	Email         string
	CNIC          string
	Address       string
	ProductID     uint
	ProductName   string
	UnitPrice     decimal.Decimal
	Quantity      int
	PaymentMethod PaymentMethod
}

// NewOrder builds a pending order from in, computing the total exactly.
func NewOrder(in OrderInput, now time.Time) (*Order, error) {
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	}
	o := &Order{
		CustomerName:  in.CustomerName,
		Phone:         in.Phone,
		Email:         in.Email,
		CNIC:          in.CNIC,
		Address:       in.Address,
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		TotalPrice:    in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		PaymentMethod: in.PaymentMethod,
		Status:        OrderStatusPending,
		CreatedAt:     now,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
