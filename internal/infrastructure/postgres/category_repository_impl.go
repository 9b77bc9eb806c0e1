package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (store_id, billboard_id, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.StoreID, c.BillboardID, c.Name)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, store_id, billboard_id, name, created_at, updated_at
		FROM categories
		WHERE store_id = $1
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
