package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type ColorRepository struct {
	pool *pgxpool.Pool
}

func NewColorRepository(pool *pgxpool.Pool) *ColorRepository {
	return &ColorRepository{pool: pool}
}

func (r *ColorRepository) Create(ctx context.Context, c *entity.Color) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO colors (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.StoreID, c.Name, c.Value)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ColorRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Color, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE store_id = $1
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Color, 0)
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

var _ repository.ColorRepository = (*ColorRepository)(nil)
