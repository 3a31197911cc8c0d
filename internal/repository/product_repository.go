package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// productUpdateColumns is the allow-list for partial product updates.
var productUpdateColumns = []string{"name", "quantity", "image"}

// ProductCount pairs a product row (Quantity holds the stored cache value)
// with the live count of its serial records.
type ProductCount struct {
	Product   domain.Product
	LiveCount int64
}

// ProductRepository encapsulates product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListWithSerialCounts(ctx context.Context) ([]ProductCount, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (id, name, quantity, image)
        VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Quantity,
		product.Image,
	)
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
        SELECT id, name, quantity, image
        FROM products WHERE id=$1`

	var product domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Quantity,
		&product.Image,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListWithSerialCounts(ctx context.Context) ([]ProductCount, error) {
	const query = `
        SELECT p.id, p.name, p.quantity, p.image, COUNT(s.serial_no) AS live_count
        FROM products p
        LEFT JOIN serial_numbers s ON p.id = s.product_id
        GROUP BY p.id, p.name, p.quantity, p.image
        ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []ProductCount{}
	for rows.Next() {
		var pc ProductCount
		if err := rows.Scan(
			&pc.Product.ID,
			&pc.Product.Name,
			&pc.Product.Quantity,
			&pc.Product.Image,
			&pc.LiveCount,
		); err != nil {
			return nil, err
		}
		products = append(products, pc)
	}
	return products, rows.Err()
}

func (r *productRepository) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET quantity=$1 WHERE id=$2`, quantity, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	query, args, err := BuildUpdate("products", "id", id, productUpdateColumns, fields)
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

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
