package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type SizeRepository struct {
	pool *pgxpool.Pool
}

func NewSizeRepository(pool *pgxpool.Pool) *SizeRepository {
	return &SizeRepository{pool: pool}
}

func (r *SizeRepository) Create(ctx context.Context, s *entity.Size) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sizes (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, s.StoreID, s.Name, s.Value)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SizeRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Size, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE store_id = $1
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Size, 0)
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

var _ repository.SizeRepository = (*SizeRepository)(nil)
