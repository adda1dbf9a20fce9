package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fieldforce/config"
	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/geo"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface: visit submission with
// advisory geofence evaluation, assignment check-in/check-out stamping, and
// the visit review and reporting queries.
type visitService struct {
	txManager repository.TransactionManager
	visitRepo repository.VisitRepository
	radius    float64
	logger    *slog.Logger
}

// VisitServiceParams holds dependencies for visitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VisitRepo repository.VisitRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	radius := geo.DefaultRadiusMeters
	if params.Config != nil {
		radius = params.Config.RadiusMeters()
	}

	return &visitService{
		txManager: params.TxManager,
		visitRepo: params.VisitRepo,
		radius:    radius,
		logger:    params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitVisit records a completed field visit. Store and user references are
// mandatory; a dangling reference rejects the submission as invalid rather
// than not-found, since the caller composed the payload. Geofence breaches
// never block admission: they annotate the comment and the response.
func (srv *visitService) SubmitVisit(ctx context.Context, input *usecase.SubmitVisitInput) (*usecase.SubmitVisitOutput, error) {
	var output *usecase.SubmitVisitOutput

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		store, err := factory.StoreRepo().FindStoreByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("store %s does not exist", input.StoreID))
			}

			return errors.Wrap(err, "failed to resolve store")
		}

		user, err := factory.UserRepo().FindUserByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("user %s does not exist", input.UserID))
			}

			return errors.Wrap(err, "failed to resolve user")
		}

		checkIn := checkInCoordinates(input)
		storeLocation := store.Location()
		evaluation := geo.Evaluate(checkIn, &storeLocation, srv.radius)

		now := time.Now().UTC()

		visit := &entity.Visit{
			ID:               uuid.New(),
			VisitDate:        now,
			Status:           entity.VisitStatusCompleted,
			SalesAmount:      input.SalesAmount,
			ShelfShare:       input.ShelfShare,
			InteractionCount: input.InteractionCount,
			Comment:          input.Comment,
			CheckInLatitude:  input.CheckInLatitude,
			CheckInLongitude: input.CheckInLongitude,
			UserID:           user.ID,
			StoreID:          store.ID,
		}

		var report *usecase.GeofenceReport
		if evaluation != nil {
			report = &usecase.GeofenceReport{
				DistanceMeters: evaluation.RoundedDistance(),
				RadiusMeters:   evaluation.RadiusMeters,
				OutsideRadius:  !evaluation.WithinRadius,
			}
			if !evaluation.WithinRadius {
				visit.Comment = appendGeofenceWarning(visit.Comment, evaluation)
				srv.log(ctx).Warn("Visit submitted outside geofence",
					slog.String("user_id", user.ID.String()),
					slog.String("store_id", store.ID.String()),
					slog.Int64("distance_meters", evaluation.RoundedDistance()))
			}
		}

		if input.AssignmentID != nil {
			if err := srv.stampAssignment(ctx, factory, *input.AssignmentID, visit, now); err != nil {
				return err
			}
		}

		if err := factory.VisitRepo().CreateVisit(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to create visit")
		}

		output = &usecase.SubmitVisitOutput{Visit: visit, Geofence: report}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// stampAssignment links the visit to its assignment and records the
// check-in/check-out pair. The first check-in wins; the check-out always
// moves forward to the latest submission.
func (srv *visitService) stampAssignment(ctx context.Context, factory repository.RepositoryFactory, assignmentID uuid.UUID, visit *entity.Visit, now time.Time) error {
	assignmentRepo := factory.AssignmentRepo()

	assignment, err := assignmentRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			srv.log(ctx).Debug("Visit references unknown assignment, link skipped",
				slog.String("assignment_id", assignmentID.String()))

			return nil
		}

		return errors.Wrap(err, "failed to resolve assignment")
	}

	visit.AssignmentID = &assignment.ID
	if assignment.CheckInTime == nil {
		checkIn := now
		assignment.CheckInTime = &checkIn
	}
	checkOut := now
	assignment.CheckOutTime = &checkOut

	if err := assignmentRepo.UpdateAssignment(ctx, assignment); err != nil {
		return errors.Wrap(err, "failed to stamp assignment")
	}

	return nil
}

// GetVisit retrieves a single visit by its id.
func (srv *visitService) GetVisit(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.visitRepo.FindVisitByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}

	return visit, nil
}

// ListVisits retrieves all visits.
func (srv *visitService) ListVisits(ctx context.Context) ([]*entity.Visit, error) {
	visits, err := srv.visitRepo.ListVisits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// ListVisitsByUser retrieves all visits submitted by one user.
func (srv *visitService) ListVisitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Visit, error) {
	visits, err := srv.visitRepo.FindVisitsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by user")
	}

	return visits, nil
}

// ListVisitsByStore retrieves all visits recorded at one store.
func (srv *visitService) ListVisitsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Visit, error) {
	visits, err := srv.visitRepo.FindVisitsByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by store")
	}

	return visits, nil
}

// VisitStats aggregates visit counts, total sales and average shelf share.
func (srv *visitService) VisitStats(ctx context.Context) (*repository.VisitStats, error) {
	stats, err := srv.visitRepo.VisitStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute visit stats")
	}

	return stats, nil
}

// UpdateVisitStatus moves a visit through the review lifecycle, typically
// COMPLETED to VALIDATED or REJECTED by a supervisor.
func (srv *visitService) UpdateVisitStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Visit, error) {
	visitStatus := entity.VisitStatus(status)
	if !visitStatus.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(
			fmt.Sprintf("unknown visit status %q", status))
	}

	var updated *entity.Visit

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		visitRepo := factory.VisitRepo()

		visit, err := visitRepo.FindVisitByID(ctx, id)
		if err != nil {
			return mapLookupError(err)
		}

		visit.Status = visitStatus

		if err := visitRepo.UpdateVisit(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to update visit status")
		}

		updated = visit

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func checkInCoordinates(input *usecase.SubmitVisitInput) *geo.Coordinates {
	if input.CheckInLatitude == nil || input.CheckInLongitude == nil {
		return nil
	}

	return &geo.Coordinates{Latitude: *input.CheckInLatitude, Longitude: *input.CheckInLongitude}
}

func appendGeofenceWarning(comment string, evaluation *geo.Evaluation) string {
	warning := fmt.Sprintf("Geofence warning: %d m from store (allowed radius: %.0f m)",
		evaluation.RoundedDistance(), evaluation.RadiusMeters)
	if comment == "" {
		return warning
	}

	return comment + "\n" + warning
}
