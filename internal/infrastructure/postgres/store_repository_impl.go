package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Store, error) {
	st := &entity.Store{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, user_id, created_at, updated_at
		FROM stores
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&st.ID, &st.Name, &st.UserID, &st.CreatedAt, &st.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

var _ repository.StoreRepository = (*StoreRepository)(nil)
