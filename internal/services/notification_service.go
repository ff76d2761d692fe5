package services

import (
	"fmt"
	"strings"

	"storefront/internal/models"

	"go.uber.org/zap"
)

// NotificationService turns order events into admin notifications.
type NotificationService struct {
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService. logger may be nil.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{logger: logger}
}

// RenderOrderNotification formats the admin notice for a new order.
func RenderOrderNotification(e models.OrderCreatedEvent) (subject, body string) {
	subject = fmt.Sprintf("New Order Received - Order #%d", e.OrderID)

	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %d\nStatus: %s\n\n", e.OrderID, e.Status)
	fmt.Fprintf(&b, "Customer\nName: %s\nPhone: %s\nEmail: %s\nAddress: %s\n\n", e.CustomerName, e.Phone, e.Email, e.Address)
	fmt.Fprintf(&b, "Product\nProduct ID: %d\nProduct Name: %s\nQuantity: %d\nTotal Price: %s\nPayment Method: %s\n",
		e.ProductID, e.ProductName, e.Quantity, e.TotalPrice.StringFixed(2), e.PaymentMethod)
	return subject, b.String()
}

// HandleOrderCreated emits the notification for one event.
func (s *NotificationService) HandleOrderCreated(e models.OrderCreatedEvent) error {
	subject, body := RenderOrderNotification(e)
	s.logger.Info(subject, zap.String("event_id", e.EventID), zap.String("body", body))
	return nil
}
