package postgres

import (
	"context"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// CreateVisit persists a submitted visit.
func (repo *visitRepository) CreateVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user, store or assignment reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// FindVisitByID retrieves a visit by its unique ID.
func (repo *visitRepository) FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return toVisitDomain(&visitM), nil
}

// ListVisits retrieves all visits, newest first.
func (repo *visitRepository) ListVisits(ctx context.Context) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Order("visit_date DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return toVisitDomainSlice(visitModels), nil
}

// FindVisitsByUser retrieves all visits submitted by one user, newest first.
func (repo *visitRepository) FindVisitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("visit_date DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by user")
	}

	return toVisitDomainSlice(visitModels), nil
}

// FindVisitsByStore retrieves all visits recorded at one store, newest first.
func (repo *visitRepository) FindVisitsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("visit_date DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by store")
	}

	return toVisitDomainSlice(visitModels), nil
}

// UpdateVisit persists changes to an existing visit.
func (repo *visitRepository) UpdateVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ?", visit.ID).
		Updates(map[string]any{
			"status":            visitM.Status,
			"sales_amount":      visitM.SalesAmount,
			"shelf_share":       visitM.ShelfShare,
			"interaction_count": visitM.InteractionCount,
			"comment":           visitM.Comment,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// VisitStats aggregates the reporting metrics over completed visits. NULL
// metrics are excluded from sums and averages by the underlying aggregate
// functions.
func (repo *visitRepository) VisitStats(ctx context.Context) (*repository.VisitStats, error) {
	var stats repository.VisitStats

	row := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Select("COUNT(*), COALESCE(SUM(sales_amount), 0), COALESCE(AVG(shelf_share), 0)").
		Where("status = ?", entity.VisitStatusCompleted.String()).
		Row()
	if err := row.Scan(&stats.TotalVisits, &stats.TotalSales, &stats.AvgShelfShare); err != nil {
		return nil, errors.Wrap(err, "failed to compute visit stats")
	}

	return &stats, nil
}

func toVisitDomain(visitM *model.VisitModel) *entity.Visit {
	return &entity.Visit{
		ID:               visitM.ID,
		VisitDate:        visitM.VisitDate,
		Status:           entity.VisitStatus(visitM.Status),
		SalesAmount:      visitM.SalesAmount,
		ShelfShare:       visitM.ShelfShare,
		InteractionCount: visitM.InteractionCount,
		Comment:          visitM.Comment,
		CheckInLatitude:  visitM.CheckInLatitude,
		CheckInLongitude: visitM.CheckInLongitude,
		UserID:           visitM.UserID,
		StoreID:          visitM.StoreID,
		AssignmentID:     visitM.AssignmentID,
		CreatedAt:        visitM.CreatedAt,
		UpdatedAt:        visitM.UpdatedAt,
	}
}

func toVisitDomainSlice(visitModels []*model.VisitModel) []*entity.Visit {
	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits
}

func fromVisitDomain(visit *entity.Visit) *model.VisitModel {
	return &model.VisitModel{
		ID:               visit.ID,
		VisitDate:        visit.VisitDate,
		Status:           visit.Status.String(),
		SalesAmount:      visit.SalesAmount,
		ShelfShare:       visit.ShelfShare,
		InteractionCount: visit.InteractionCount,
		Comment:          visit.Comment,
		CheckInLatitude:  visit.CheckInLatitude,
		CheckInLongitude: visit.CheckInLongitude,
		UserID:           visit.UserID,
		StoreID:          visit.StoreID,
		AssignmentID:     visit.AssignmentID,
	}
}
