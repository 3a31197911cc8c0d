package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// serialUpdateColumns is the allow-list for partial serial updates. The key
// column serial_no is deliberately absent.
var serialUpdateColumns = []string{"product_id", "storage_id", "last_updated"}

// SerialRepository encapsulates serialized stock item persistence.
type SerialRepository interface {
	Create(ctx context.Context, serial *domain.SerialNumber) error
	ListDetails(ctx context.Context) ([]domain.SerialNumberDetail, error)
	UpdateFields(ctx context.Context, serialNo string, fields map[string]any) error
	Delete(ctx context.Context, serialNo string) error
}

type serialRepository struct {
	pool *pgxpool.Pool
}

// NewSerialRepository instantiates repository.
func NewSerialRepository(pool *pgxpool.Pool) SerialRepository {
	return &serialRepository{pool: pool}
}

func (r *serialRepository) Create(ctx context.Context, serial *domain.SerialNumber) error {
	const query = `
        INSERT INTO serial_numbers (serial_no, product_id, storage_id, last_updated)
        VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		serial.SerialNo,
		serial.ProductID,
		serial.StorageID,
		serial.LastUpdated,
	)
	return err
}

func (r *serialRepository) ListDetails(ctx context.Context) ([]domain.SerialNumberDetail, error) {
	const query = `
        SELECT s.serial_no, s.product_id, s.storage_id, s.last_updated,
               p.name, p.image, l.location
        FROM serial_numbers s
        INNER JOIN products p ON s.product_id = p.id
        LEFT OUTER JOIN storage_locations l ON s.storage_id = l.id
        ORDER BY s.serial_no`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []domain.SerialNumberDetail{}
	for rows.Next() {
		var detail domain.SerialNumberDetail
		if err := rows.Scan(
			&detail.SerialNo,
			&detail.ProductID,
			&detail.StorageID,
			&detail.LastUpdated,
			&detail.ProductName,
			&detail.Image,
			&detail.Location,
		); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

func (r *serialRepository) UpdateFields(ctx context.Context, serialNo string, fields map[string]any) error {
	query, args, err := BuildUpdate("serial_numbers", "serial_no", serialNo, serialUpdateColumns, fields)
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

func (r *serialRepository) Delete(ctx context.Context, serialNo string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM serial_numbers WHERE serial_no=$1`, serialNo)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
