package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

type ColorRepository interface {
	Create(ctx context.Context, c *entity.Color) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Color, error)
}
