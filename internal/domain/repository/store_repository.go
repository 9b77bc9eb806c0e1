package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// StoreRepository resolves stores for the ownership guard.
type StoreRepository interface {
	// GetByIDAndUser returns the store only when it exists and belongs to
	// the given user; ErrNotFound otherwise.
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Store, error)
}
