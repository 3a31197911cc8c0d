package service

import (
	"context"
	"errors"
	"time"

	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/repository"
	apperrors "github.com/mangostorage/inventory-service/pkg/util"
)

// OrderService coordinates order listing and mutation.
type OrderService struct {
	orders repository.OrderRepository
}

// OrderUpdateInput captures the optional fields of a partial order update.
// Each field binds to its own column.
type OrderUpdateInput struct {
	OrderDate     *time.Time
	EmpNo         *int64
	TotalQuantity *int64
	Status        *domain.OrderStatus
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// ListOrders returns all orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateOrder applies a partial update to an order.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, input OrderUpdateInput) error {
	fields := map[string]any{}
	if input.OrderDate != nil {
		fields["order_date"] = *input.OrderDate
	}
	if input.EmpNo != nil {
		fields["emp_no"] = *input.EmpNo
	}
	if input.TotalQuantity != nil {
		fields["total_quantity"] = *input.TotalQuantity
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if err := s.orders.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNoFieldsSupplied) {
			return apperrors.NewValidationError("no updatable fields supplied", nil)
		}
		return err
	}
	return nil
}

// DeleteOrder removes an order.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
