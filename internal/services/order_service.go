package services

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher delivers storefront notifications to a broker.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
	PublishContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// CreateOrderRequest is the customer checkout payload. Product name and total
// are always resolved server-side; any client-sent values are ignored.
type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"required,max=50"`
	Email         string `json:"email" validate:"required,max=255"`
	CNIC          string `json:"cnic" validate:"required,max=50"`
	Address       string `json:"address" validate:"required,max=1000"`
	ProductID     uint   `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=COD Online"`
}

// OrderOptions tunes OrderService behaviour.
type OrderOptions struct {
	// RejectOutOfStock refuses orders for products marked out of stock.
	RejectOutOfStock bool
	Now              func() time.Time
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
	logger      *zap.Logger
	opts        OrderOptions
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger, opts OrderOptions) *OrderService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
		opts:        opts,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CreateOrder resolves the product, snapshots its name and price into a new
// pending order and persists it.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", models.ErrValidation, req.Quantity)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		if s.opts.RejectOutOfStock {
			return nil, fmt.Errorf("%w: product %q is out of stock", models.ErrValidation, product.Name)
		}
		s.logger.Warn("accepting order for out-of-stock product", zap.Uint("product_id", product.ID))
	}

	order, err := models.NewOrder(models.OrderInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Email:         req.Email,
		CNIC:          req.CNIC,
		Address:       req.Address,
		ProductID:     product.ID,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		Quantity:      req.Quantity,
		PaymentMethod: paymentMethod,
	}, s.opts.Now())
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity),
		zap.String("total_price", order.TotalPrice.String()))

	s.publishOrderCreated(ctx, order)
	return order, nil
}

// publishOrderCreated notifies the broker. Failures are logged only; the order
// is already persisted.
func (s *OrderService) publishOrderCreated(ctx context.Context, order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := models.OrderCreatedEvent{
		EventID:       uuid.NewString(),
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Email:         order.Email,
		Address:       order.Address,
		ProductID:     order.ProductID,
		ProductName:   order.ProductName,
		Quantity:      order.Quantity,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Timestamp:     order.CreatedAt,
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Warn("failed to publish order created event", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

// UpdateOrderStatus moves an order to any of the known statuses.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	s.logger.Info("order status updated", zap.Uint("order_id", id), zap.String("status", string(newStatus)))
	return order, nil
}

// DeleteOrder permanently removes an order.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.Uint("order_id", id))
	return nil
}
