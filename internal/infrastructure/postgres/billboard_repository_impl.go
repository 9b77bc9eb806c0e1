package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type BillboardRepository struct {
	pool *pgxpool.Pool
}

func NewBillboardRepository(pool *pgxpool.Pool) *BillboardRepository {
	return &BillboardRepository{pool: pool}
}

func (r *BillboardRepository) Create(ctx context.Context, b *entity.Billboard) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO billboards (store_id, label, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, b.StoreID, b.Label, b.ImageURL)

	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BillboardRepository) ListByStore(ctx context.Context, storeID string) ([]entity.Billboard, error) {
	return r.list(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE store_id = $1
	`, storeID)
}

func (r *BillboardRepository) ListByStoreRecentFirst(ctx context.Context, storeID string) ([]entity.Billboard, error) {
	return r.list(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
}

func (r *BillboardRepository) list(ctx context.Context, query, storeID string) ([]entity.Billboard, error) {
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Billboard, 0)
	for rows.Next() {
		var b entity.Billboard
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

var _ repository.BillboardRepository = (*BillboardRepository)(nil)
