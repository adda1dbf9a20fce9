package usecase

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitVisitInput carries a field visit submission. The visit date is
// stamped server-side at submission time.
type SubmitVisitInput struct {
	StoreID          uuid.UUID  `json:"store_id"`
	UserID           uuid.UUID  `json:"user_id"`
	SalesAmount      *float64   `json:"sales_amount,omitempty"`
	ShelfShare       *float64   `json:"shelf_share,omitempty"`
	InteractionCount *int       `json:"interaction_count,omitempty"`
	Comment          string     `json:"comment,omitempty"`
	CheckInLatitude  *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude *float64   `json:"check_in_longitude,omitempty"`
	AssignmentID     *uuid.UUID `json:"assignment_id,omitempty"`
}

// GeofenceReport is the advisory geofence outcome attached to an accepted
// visit. Present only when both coordinate pairs were available.
type GeofenceReport struct {
	DistanceMeters int64   `json:"distance_to_store"`
	RadiusMeters   float64 `json:"geofence_radius"`
	OutsideRadius  bool    `json:"outside_geofence"`
}

// SubmitVisitOutput is the persisted visit plus the geofence evaluation.
type SubmitVisitOutput struct {
	Visit    *entity.Visit   `json:"visit"`
	Geofence *GeofenceReport `json:"geofence,omitempty"`
}

// VisitUsecase defines the interface for visit admission and review.
type VisitUsecase interface {
	// SubmitVisit admits a visit, evaluates the geofence, and stamps
	// check-in/check-out times on the linked assignment if any. Acceptance
	// is unconditional regardless of geofence outcome.
	SubmitVisit(ctx context.Context, input *SubmitVisitInput) (*SubmitVisitOutput, error)

	// GetVisit retrieves a visit by id.
	GetVisit(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// ListVisits retrieves all visits, most recent first.
	ListVisits(ctx context.Context) ([]*entity.Visit, error)

	// ListVisitsByUser retrieves a user's visits, most recent first.
	ListVisitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Visit, error)

	// ListVisitsByStore retrieves a store's visits, most recent first.
	ListVisitsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Visit, error)

	// VisitStats aggregates completed-visit KPIs for the dashboard.
	VisitStats(ctx context.Context) (*repository.VisitStats, error)

	// UpdateVisitStatus sets a visit's review status (VALIDATED/REJECTED).
	UpdateVisitStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Visit, error)
}
