package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

type SizeRepository interface {
	Create(ctx context.Context, s *entity.Size) error
	ListByStore(ctx context.Context, storeID string) ([]entity.Size, error)
}
