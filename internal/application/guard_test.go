package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type stubStoreRepo struct {
	store *entity.Store
	err   error
}

func (s *stubStoreRepo) GetByIDAndUser(context.Context, string, string) (*entity.Store, error) {
	return s.store, s.err
}

func TestGuardMissingSubject(t *testing.T) {
	g := NewOwnershipGuard(&stubStoreRepo{})

	_, err := g.Authorize(context.Background(), "", "store-1")

	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.Equal(t, "Unauthorized", ae.Message)
}

func TestGuardMissingStoreID(t *testing.T) {
	g := NewOwnershipGuard(&stubStoreRepo{})

	_, err := g.Authorize(context.Background(), "user-1", "")

	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, ae.Status)
	assert.Equal(t, "Store ID is required", ae.Message)
}

func TestGuardStoreNotOwned(t *testing.T) {
	g := NewOwnershipGuard(&stubStoreRepo{err: repository.ErrNotFound})

	_, err := g.Authorize(context.Background(), "user-1", "store-1")

	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Status)
	assert.Equal(t, "Unauthorized", ae.Message)
}

func TestGuardRepositoryFailurePassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	g := NewOwnershipGuard(&stubStoreRepo{err: boom})

	_, err := g.Authorize(context.Background(), "user-1", "store-1")

	require.ErrorIs(t, err, boom)
	_, ok := AsError(err)
	assert.False(t, ok)
}

func TestGuardAllowsOwner(t *testing.T) {
	st := &entity.Store{ID: "store-1", UserID: "user-1"}
	g := NewOwnershipGuard(&stubStoreRepo{store: st})

	got, err := g.Authorize(context.Background(), "user-1", "store-1")

	require.NoError(t, err)
	assert.Equal(t, st, got)
}
