package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Category, error)
}
