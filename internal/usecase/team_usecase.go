package usecase

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
)

// TeamUsecase exposes the field-force reporting hierarchy. Subordinates are
// looked up by manager id rather than embedded in user records, so the
// self-referencing hierarchy never serializes as a cyclic object graph.
type TeamUsecase interface {
	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListSubordinates retrieves the promoters reporting to an SFOS manager.
	ListSubordinates(ctx context.Context, managerID uuid.UUID) ([]*entity.User, error)

	// ReassignManager points a promoter at a new SFOS manager.
	ReassignManager(ctx context.Context, promoterID, managerID uuid.UUID) (*entity.User, error)
}

// StoreUsecase exposes store lookups for eligibility checks and maps.
type StoreUsecase interface {
	// ListStores retrieves all stores.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// GetStore retrieves a store by id.
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)
}
