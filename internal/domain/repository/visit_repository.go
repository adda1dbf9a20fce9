package repository

import (
	"context"

	"fieldforce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVisitNotFound is returned when a visit is not found.
var ErrVisitNotFound = errors.New("visit not found")

// VisitStats aggregates dashboard KPIs over completed visits.
type VisitStats struct {
	TotalVisits   int64
	TotalSales    float64
	AvgShelfShare float64
}

// VisitRepository defines the interface for visit-related database operations.
type VisitRepository interface {
	// CreateVisit persists a new visit.
	CreateVisit(ctx context.Context, visit *entity.Visit) error

	// FindVisitByID retrieves a visit by its unique ID.
	// Returns ErrVisitNotFound when no such visit exists.
	FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// ListVisits retrieves all visits, most recent first.
	ListVisits(ctx context.Context) ([]*entity.Visit, error)

	// FindVisitsByUser retrieves a user's visits, most recent first.
	FindVisitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Visit, error)

	// FindVisitsByStore retrieves a store's visits, most recent first.
	FindVisitsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Visit, error)

	// UpdateVisit updates an existing visit record.
	UpdateVisit(ctx context.Context, visit *entity.Visit) error

	// VisitStats aggregates completed-visit KPIs.
	VisitStats(ctx context.Context) (*VisitStats, error)
}
