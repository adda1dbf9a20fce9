package repository

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the interface for store-related database operations.
// Stores are read-only from the scheduling core's perspective.
type StoreRepository interface {
	// FindStoreByID retrieves a store by its unique ID.
	// Returns ErrStoreNotFound when no such store exists.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores ordered by name.
	ListStores(ctx context.Context) ([]*entity.Store, error)
}
