package application

import (
	"context"
	"errors"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// OwnershipGuard binds a subject to a store before any mutation is allowed
// through. Every catalog write goes through Authorize.
type OwnershipGuard struct {
	stores repository.StoreRepository
}

func NewOwnershipGuard(stores repository.StoreRepository) *OwnershipGuard {
	return &OwnershipGuard{stores: stores}
}

// Authorize returns the store when subjectID owns storeID. Denials map to
// the error taxonomy: missing subject 401, missing store id 422, store not
// owned (or absent) 403.
func (g *OwnershipGuard) Authorize(ctx context.Context, subjectID, storeID string) (*entity.Store, error) {
	if subjectID == "" {
		return nil, Unauthenticated()
	}
	if storeID == "" {
		return nil, Validation("Store ID is required")
	}
	st, err := g.stores.GetByIDAndUser(ctx, storeID, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Forbidden()
		}
		return nil, err
	}
	return st, nil
}
