package impl

import (
	"context"
	"fmt"
	"log/slog"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// teamService implements the TeamUsecase interface: the supervisor hierarchy
// over field users.
type teamService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// TeamServiceParams holds dependencies for teamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// ListUsers retrieves all users.
func (srv *teamService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser retrieves a single user by id.
func (srv *teamService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}

	return user, nil
}

// ListSubordinates retrieves the users reporting to the given manager.
func (srv *teamService) ListSubordinates(ctx context.Context, managerID uuid.UUID) ([]*entity.User, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, managerID); err != nil {
		return nil, mapLookupError(err)
	}

	users, err := srv.userRepo.FindUsersByManager(ctx, managerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subordinates")
	}

	return users, nil
}

// ReassignManager moves a promoter under a different SFOS manager. Only
// promoters can be reassigned, and only SFOS users can manage them.
func (srv *teamService) ReassignManager(ctx context.Context, promoterID, managerID uuid.UUID) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		promoter, err := userRepo.FindUserByID(ctx, promoterID)
		if err != nil {
			return mapLookupError(err)
		}
		if promoter.Role != entity.RolePromoter {
			return domainerrors.ErrNotPromoter.WithDetails(
				fmt.Sprintf("user %s has role %s", promoter.ID, promoter.Role))
		}

		manager, err := userRepo.FindUserByID(ctx, managerID)
		if err != nil {
			return mapLookupError(err)
		}
		if manager.Role != entity.RoleSFOS {
			return domainerrors.ErrManagerNotSFOS.WithDetails(
				fmt.Sprintf("user %s has role %s", manager.ID, manager.Role))
		}

		promoter.ManagerID = &manager.ID

		if err := userRepo.UpdateUser(ctx, promoter); err != nil {
			return errors.Wrap(err, "failed to reassign manager")
		}

		updated = promoter

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
