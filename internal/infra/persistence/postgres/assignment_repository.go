package postgres

import (
	"context"
	"time"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

func orderTasksByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateAssignment persists a new assignment together with its checklist.
func (repo *assignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.CreatedAt = assignmentM.CreatedAt
	assignment.UpdatedAt = assignmentM.UpdatedAt

	return nil
}

// CreateAssignments persists a batch of assignments in one statement.
func (repo *assignmentRepository) CreateAssignments(ctx context.Context, assignments []*entity.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	assignmentModels := make([]*model.AssignmentModel, 0, len(assignments))
	for _, assignment := range assignments {
		assignmentModels = append(assignmentModels, fromAssignmentDomain(assignment))
	}

	if err := repo.db.WithContext(ctx).Create(&assignmentModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignments")
	}

	return nil
}

// FindAssignmentByID retrieves an assignment with its checklist.
func (repo *assignmentRepository) FindAssignmentByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	var assignmentM model.AssignmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Tasks", orderTasksByPosition).
		Where("id = ?", id).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by ID")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// FindAssignmentsByUserAndDate retrieves a user's assignments on a given day.
func (repo *assignmentRepository) FindAssignmentsByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Assignment, error) {
	var assignmentModels []*model.AssignmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Tasks", orderTasksByPosition).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignments by user and date")
	}

	assignments := make([]*entity.Assignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

// ListAssignments retrieves one page of assignments matching the filter,
// along with the unpaged total.
func (repo *assignmentRepository) ListAssignments(ctx context.Context, filter repository.AssignmentFilter, page, size int) ([]*entity.Assignment, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AssignmentModel{})
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count assignments")
	}

	var assignmentModels []*model.AssignmentModel
	if err := query.
		Preload("Tasks", orderTasksByPosition).
		Order("date DESC, created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&assignmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list assignments")
	}

	assignments := make([]*entity.Assignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, total, nil
}

// UpdateAssignment persists changes to an assignment and replaces its
// checklist wholesale. The old task rows are removed and the current set is
// reinserted, preserving positions.
func (repo *assignmentRepository) UpdateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	result := repo.db.WithContext(ctx).
		Model(&model.AssignmentModel{}).
		Where("id = ?", assignment.ID).
		Updates(map[string]any{
			"date":           assignmentM.Date,
			"status":         assignmentM.Status,
			"check_in_time":  assignmentM.CheckInTime,
			"check_out_time": assignmentM.CheckOutTime,
			"user_id":        assignmentM.UserID,
			"store_id":       assignmentM.StoreID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAssignment
		}

		return errors.Wrap(result.Error, "failed to update assignment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("assignment_id = ?", assignment.ID).
		Delete(&model.TaskItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear assignment tasks")
	}

	if len(assignmentM.Tasks) > 0 {
		if err := repo.db.WithContext(ctx).Create(&assignmentM.Tasks).Error; err != nil {
			return errors.Wrap(err, "failed to recreate assignment tasks")
		}
	}

	return nil
}

// DeleteAssignment removes an assignment; its tasks cascade.
func (repo *assignmentRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AssignmentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete assignment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

func toAssignmentDomain(assignmentM *model.AssignmentModel) *entity.Assignment {
	tasks := make([]entity.TaskItem, 0, len(assignmentM.Tasks))
	for _, taskM := range assignmentM.Tasks {
		tasks = append(tasks, entity.TaskItem{
			ID:          taskM.ID,
			Description: taskM.Description,
			Status:      entity.TaskStatus(taskM.Status),
		})
	}

	return &entity.Assignment{
		ID:           assignmentM.ID,
		Date:         assignmentM.Date,
		Status:       entity.AssignmentStatus(assignmentM.Status),
		CheckInTime:  assignmentM.CheckInTime,
		CheckOutTime: assignmentM.CheckOutTime,
		UserID:       assignmentM.UserID,
		StoreID:      assignmentM.StoreID,
		Tasks:        tasks,
		CreatedAt:    assignmentM.CreatedAt,
		UpdatedAt:    assignmentM.UpdatedAt,
	}
}

func fromAssignmentDomain(assignment *entity.Assignment) *model.AssignmentModel {
	taskModels := make([]model.TaskItemModel, 0, len(assignment.Tasks))
	for i, task := range assignment.Tasks {
		taskModels = append(taskModels, model.TaskItemModel{
			ID:           task.ID,
			AssignmentID: assignment.ID,
			Description:  task.Description,
			Status:       task.Status.String(),
			Position:     i,
		})
	}

	return &model.AssignmentModel{
		ID:           assignment.ID,
		Date:         assignment.Date,
		Status:       assignment.Status.String(),
		CheckInTime:  assignment.CheckInTime,
		CheckOutTime: assignment.CheckOutTime,
		UserID:       assignment.UserID,
		StoreID:      assignment.StoreID,
		Tasks:        taskModels,
	}
}
