package impl

import (
	"context"
	"log/slog"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

// ListStores retrieves all stores.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore retrieves a single store by id.
func (srv *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}

	return store, nil
}
