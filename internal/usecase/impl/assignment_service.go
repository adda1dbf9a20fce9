// Package impl contains the implementation of the application's business logic.
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
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// assignmentService implements the AssignmentUsecase interface: overlap-free
// daily scheduling per user, role eligibility, and checklist-driven status.
type assignmentService struct {
	txManager       repository.TransactionManager
	assignmentRepo  repository.AssignmentRepository
	userRepo        repository.UserRepository
	storeRepo       repository.StoreRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// AssignmentServiceParams holds dependencies for assignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssignmentRepo repository.AssignmentRepository
	UserRepo       repository.UserRepository
	StoreRepo      repository.StoreRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	defaultSize, maxSize := config.DefaultPageSize, config.MaxPageSize
	if params.Config != nil {
		defaultSize, maxSize = params.Config.PageSizes()
	}

	return &assignmentService{
		txManager:       params.TxManager,
		assignmentRepo:  params.AssignmentRepo,
		userRepo:        params.UserRepo,
		storeRepo:       params.StoreRepo,
		defaultPageSize: defaultSize,
		maxPageSize:     maxSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAssignments retrieves one page of assignments. Filter combinations
// apply with fixed precedence: (date, user), else (date, store), else date,
// else unfiltered; user and store are never intersected.
func (srv *assignmentService) ListAssignments(ctx context.Context, input *usecase.ListAssignmentsInput) (*usecase.AssignmentPage, error) {
	page := input.Page
	if page < 0 {
		page = 0
	}
	size := input.Size
	if size <= 0 {
		size = srv.defaultPageSize
	}
	if size > srv.maxPageSize {
		size = srv.maxPageSize
	}

	var filter repository.AssignmentFilter
	switch {
	case input.Date != nil && input.UserID != nil:
		if _, err := srv.userRepo.FindUserByID(ctx, *input.UserID); err != nil {
			return nil, mapLookupError(err)
		}
		day := entity.Day(*input.Date)
		filter = repository.AssignmentFilter{Date: &day, UserID: input.UserID}
	case input.Date != nil && input.StoreID != nil:
		if _, err := srv.storeRepo.FindStoreByID(ctx, *input.StoreID); err != nil {
			return nil, mapLookupError(err)
		}
		day := entity.Day(*input.Date)
		filter = repository.AssignmentFilter{Date: &day, StoreID: input.StoreID}
	case input.Date != nil:
		day := entity.Day(*input.Date)
		filter = repository.AssignmentFilter{Date: &day}
	}

	items, total, err := srv.assignmentRepo.ListAssignments(ctx, filter, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &usecase.AssignmentPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// CreateAssignment validates the request and persists a new PLANNED
// assignment together with its checklist.
func (srv *assignmentService) CreateAssignment(ctx context.Context, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	var created *entity.Assignment

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		assignment, err := srv.buildAssignment(ctx, factory, input)
		if err != nil {
			return err
		}

		if err := factory.AssignmentRepo().CreateAssignment(ctx, assignment); err != nil {
			return mapPersistError(err, assignment)
		}

		created = assignment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// CreateAssignmentsBulk validates and builds every request before any
// persistence. The first validation failure aborts the whole batch, and the
// batch write runs inside one transaction so a storage failure mid-batch
// rolls back every member.
func (srv *assignmentService) CreateAssignmentsBulk(ctx context.Context, inputs []*usecase.CreateAssignmentInput) ([]*entity.Assignment, error) {
	var created []*entity.Assignment

	type userDay struct {
		userID uuid.UUID
		day    time.Time
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		assignments := make([]*entity.Assignment, 0, len(inputs))
		seen := make(map[userDay]struct{}, len(inputs))
		for _, input := range inputs {
			assignment, err := srv.buildAssignment(ctx, factory, input)
			if err != nil {
				return err
			}

			key := userDay{userID: assignment.UserID, day: assignment.Date}
			if _, dup := seen[key]; dup {
				return overlapError(assignment.UserID, assignment.Date)
			}
			seen[key] = struct{}{}

			assignments = append(assignments, assignment)
		}

		if err := factory.AssignmentRepo().CreateAssignments(ctx, assignments); err != nil {
			if errors.Is(err, repository.ErrDuplicateAssignment) {
				return domainerrors.ErrAssignmentOverlap.WithDetails("duplicate (user, date) pair within the batch")
			}

			return errors.Wrap(err, "failed to create assignment batch")
		}

		created = assignments

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Assignment batch created", slog.Int("count", len(created)))

	return created, nil
}

// UpdateAssignment re-validates eligibility and the overlap rule (excluding
// the assignment's own id, so re-dating does not conflict with itself),
// replaces user and store, and rebuilds the task list wholesale. The status
// is re-derived from the rebuilt checklist: clearing all tasks yields PLANNED.
func (srv *assignmentService) UpdateAssignment(ctx context.Context, id uuid.UUID, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	var updated *entity.Assignment

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		assignmentRepo := factory.AssignmentRepo()

		existing, err := assignmentRepo.FindAssignmentByID(ctx, id)
		if err != nil {
			return mapLookupError(err)
		}

		user, store, day, err := srv.validateRequest(ctx, factory, input, existing.ID)
		if err != nil {
			return err
		}

		drafts, err := taskDraftsFromInput(input.Tasks)
		if err != nil {
			return err
		}

		existing.Date = day
		existing.UserID = user.ID
		existing.StoreID = store.ID
		existing.RebuildTasks(drafts)
		existing.RecalculateStatus()

		if err := assignmentRepo.UpdateAssignment(ctx, existing); err != nil {
			return mapPersistError(err, existing)
		}

		updated = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAssignment removes an assignment, cascading to its tasks. Deleting
// an unknown id is a silent no-op.
func (srv *assignmentService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	if err := srv.assignmentRepo.DeleteAssignment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			srv.log(ctx).Debug("Delete of unknown assignment ignored", slog.String("assignment_id", id.String()))

			return nil
		}

		return errors.Wrap(err, "failed to delete assignment")
	}

	return nil
}

// UpdateTaskStatuses overwrites matching task statuses and re-derives the
// assignment status. Updates referencing unknown task ids are silently
// ignored; an empty update set returns the assignment unchanged.
func (srv *assignmentService) UpdateTaskStatuses(ctx context.Context, id uuid.UUID, updates []usecase.TaskUpdateInput) (*entity.Assignment, error) {
	taskUpdates, err := taskUpdatesFromInput(updates)
	if err != nil {
		return nil, err
	}

	var result *entity.Assignment

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		assignmentRepo := factory.AssignmentRepo()

		assignment, err := assignmentRepo.FindAssignmentByID(ctx, id)
		if err != nil {
			return mapLookupError(err)
		}

		if len(taskUpdates) == 0 {
			result = assignment

			return nil
		}

		assignment.ApplyTaskUpdates(taskUpdates)
		assignment.RecalculateStatus()

		if err := assignmentRepo.UpdateAssignment(ctx, assignment); err != nil {
			return errors.Wrap(err, "failed to update task statuses")
		}

		result = assignment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// buildAssignment validates a create request and materializes the aggregate.
// Status is forced to PLANNED on creation; derivation only runs on updates.
func (srv *assignmentService) buildAssignment(ctx context.Context, factory repository.RepositoryFactory, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	user, store, day, err := srv.validateRequest(ctx, factory, input, uuid.Nil)
	if err != nil {
		return nil, err
	}

	drafts, err := taskDraftsFromInput(input.Tasks)
	if err != nil {
		return nil, err
	}

	assignment := &entity.Assignment{
		ID:      uuid.New(),
		Date:    day,
		Status:  entity.AssignmentStatusPlanned,
		UserID:  user.ID,
		StoreID: store.ID,
	}
	assignment.RebuildTasks(drafts)

	return assignment, nil
}

// validateRequest resolves the referenced user and store, checks role
// eligibility and enforces the one-assignment-per-user-per-day rule.
// excludeID carves the assignment being updated out of the overlap check.
func (srv *assignmentService) validateRequest(ctx context.Context, factory repository.RepositoryFactory, input *usecase.CreateAssignmentInput, excludeID uuid.UUID) (*entity.User, *entity.Store, time.Time, error) {
	if input.Date.IsZero() {
		return nil, nil, time.Time{}, domainerrors.ErrDateRequired
	}

	user, err := factory.UserRepo().FindUserByID(ctx, input.UserID)
	if err != nil {
		return nil, nil, time.Time{}, mapLookupError(err)
	}

	store, err := factory.StoreRepo().FindStoreByID(ctx, input.StoreID)
	if err != nil {
		return nil, nil, time.Time{}, mapLookupError(err)
	}

	if !user.Role.IsSchedulable() {
		return nil, nil, time.Time{}, domainerrors.ErrRoleNotSchedulable.WithDetails(
			fmt.Sprintf("user %s has role %s", user.ID, user.Role))
	}

	day := entity.Day(input.Date)

	existing, err := factory.AssignmentRepo().FindAssignmentsByUserAndDate(ctx, user.ID, day)
	if err != nil {
		return nil, nil, time.Time{}, errors.Wrap(err, "failed to check assignment overlap")
	}
	for _, assignment := range existing {
		if assignment.ID != excludeID {
			return nil, nil, time.Time{}, overlapError(user.ID, day)
		}
	}

	return user, store, day, nil
}

func overlapError(userID uuid.UUID, day time.Time) error {
	return domainerrors.ErrAssignmentOverlap.WithDetails(
		fmt.Sprintf("user %s already has an assignment on %s", userID, day.Format(dateLayout)))
}

// mapPersistError translates storage-level constraint rejections into the
// caller-facing error model. The unique (user, date) index can fire even
// after the fast-path overlap check passed, under concurrent requests.
func mapPersistError(err error, assignment *entity.Assignment) error {
	if errors.Is(err, repository.ErrDuplicateAssignment) {
		return overlapError(assignment.UserID, assignment.Date)
	}

	return errors.Wrap(err, "failed to persist assignment")
}

// mapLookupError translates repository sentinel errors into the caller-facing
// NotFound family.
func mapLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	case errors.Is(err, repository.ErrAssignmentNotFound):
		return domainerrors.ErrAssignmentNotFound
	case errors.Is(err, repository.ErrVisitNotFound):
		return domainerrors.ErrVisitNotFound
	default:
		return errors.Wrap(err, "lookup failed")
	}
}

// taskDraftsFromInput converts request drafts, rejecting malformed status
// values. Blank statuses default to TODO inside RebuildTasks.
func taskDraftsFromInput(inputs []usecase.TaskDraftInput) ([]entity.TaskDraft, error) {
	drafts := make([]entity.TaskDraft, 0, len(inputs))
	for _, input := range inputs {
		status := entity.TaskStatus(input.Status)
		if input.Status != "" && !status.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(
				fmt.Sprintf("unknown task status %q", input.Status))
		}

		drafts = append(drafts, entity.TaskDraft{Description: input.Description, Status: status})
	}

	return drafts, nil
}

// taskUpdatesFromInput converts request updates. Entries missing either the
// task id or the status are skipped, matching the lenient update contract;
// malformed status values are rejected.
func taskUpdatesFromInput(inputs []usecase.TaskUpdateInput) ([]entity.TaskUpdate, error) {
	updates := make([]entity.TaskUpdate, 0, len(inputs))
	for _, input := range inputs {
		if input.TaskID == uuid.Nil || input.Status == "" {
			continue
		}

		status := entity.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(
				fmt.Sprintf("unknown task status %q", input.Status))
		}

		updates = append(updates, entity.TaskUpdate{TaskID: input.TaskID, Status: status})
	}

	return updates, nil
}
