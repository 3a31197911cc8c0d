package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// orderUpdateColumns is the allow-list for partial order updates.
var orderUpdateColumns = []string{"order_date", "emp_no", "total_quantity", "status"}

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, order_date, emp_no, total_quantity, status
        FROM orders ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.OrderDate,
			&order.EmpNo,
			&order.TotalQuantity,
			&order.Status,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, order_date, emp_no, total_quantity, status
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderDate,
		&order.EmpNo,
		&order.TotalQuantity,
		&order.Status,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	query, args, err := BuildUpdate("orders", "id", id, orderUpdateColumns, fields)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
