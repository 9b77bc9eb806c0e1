package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

type BillboardRepository interface {
	// Create inserts the billboard and fills in ID and timestamps.
	Create(ctx context.Context, b *entity.Billboard) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Billboard, error)
	// ListByStoreRecentFirst backs the dashboard page, newest first.
	ListByStoreRecentFirst(ctx context.Context, storeID string) ([]entity.Billboard, error)
}
