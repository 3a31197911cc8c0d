package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// StorageRepository encapsulates storage location persistence.
type StorageRepository interface {
	List(ctx context.Context) ([]domain.StorageLocation, error)
	GetByID(ctx context.Context, id string) (*domain.StorageLocation, error)
}

type storageRepository struct {
	pool *pgxpool.Pool
}

// NewStorageRepository instantiates repository.
func NewStorageRepository(pool *pgxpool.Pool) StorageRepository {
	return &storageRepository{pool: pool}
}

func (r *storageRepository) List(ctx context.Context) ([]domain.StorageLocation, error) {
	const query = `SELECT id, location FROM storage_locations ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []domain.StorageLocation{}
	for rows.Next() {
		var location domain.StorageLocation
		if err := rows.Scan(&location.ID, &location.Location); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

func (r *storageRepository) GetByID(ctx context.Context, id string) (*domain.StorageLocation, error) {
	const query = `SELECT id, location FROM storage_locations WHERE id=$1`

	var location domain.StorageLocation
	if err := r.pool.QueryRow(ctx, query, id).Scan(&location.ID, &location.Location); err != nil {
		return nil, err
	}
	return &location, nil
}
