package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// UserRepository defines the interface for admin account lookups.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
