package impl

import (
	"context"
	"testing"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	mockRepo "fieldforce/internal/mocks/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// teamServiceFixtures holds all test dependencies for team service tests.
type teamServiceFixtures struct {
	t         *testing.T
	service   usecase.TeamUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestTeamService(t *testing.T) teamServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewTeamService(TeamServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return teamServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func (f teamServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestTeamService_ListSubordinates_Success(t *testing.T) {
	fx := createTestTeamService(t)

	ctx := context.Background()
	manager := schedulableUser(entity.RoleSFOS)
	subordinates := []*entity.User{
		schedulableUser(entity.RolePromoter),
		schedulableUser(entity.RolePromoter),
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, manager.ID).Return(manager, nil)
	fx.userRepo.EXPECT().FindUsersByManager(ctx, manager.ID).Return(subordinates, nil)

	users, err := fx.service.ListSubordinates(ctx, manager.ID)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestTeamService_ListSubordinates_ManagerNotFound(t *testing.T) {
	fx := createTestTeamService(t)

	ctx := context.Background()
	managerID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, managerID).Return(nil, repository.ErrUserNotFound)

	users, err := fx.service.ListSubordinates(ctx, managerID)

	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestTeamService_ReassignManager_Success(t *testing.T) {
	fx := createTestTeamService(t)

	ctx := context.Background()
	promoter := schedulableUser(entity.RolePromoter)
	manager := schedulableUser(entity.RoleSFOS)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, promoter.ID).Return(promoter, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, manager.ID).Return(manager, nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	updated, err := fx.service.ReassignManager(ctx, promoter.ID, manager.ID)

	require.NoError(t, err)
	require.NotNil(t, updated.ManagerID)
	assert.Equal(t, manager.ID, *updated.ManagerID)
}

func TestTeamService_ReassignManager_NotPromoter(t *testing.T) {
	fx := createTestTeamService(t)

	ctx := context.Background()
	sfos := schedulableUser(entity.RoleSFOS)
	manager := schedulableUser(entity.RoleSFOS)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, sfos.ID).Return(sfos, nil)
	})

	updated, err := fx.service.ReassignManager(ctx, sfos.ID, manager.ID)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPromoter))
}

func TestTeamService_ReassignManager_ManagerNotSFOS(t *testing.T) {
	fx := createTestTeamService(t)

	ctx := context.Background()
	promoter := schedulableUser(entity.RolePromoter)
	otherPromoter := schedulableUser(entity.RolePromoter)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, promoter.ID).Return(promoter, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, otherPromoter.ID).Return(otherPromoter, nil)
	})

	updated, err := fx.service.ReassignManager(ctx, promoter.ID, otherPromoter.ID)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrManagerNotSFOS))
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	store, err := service.GetStore(ctx, storeID)

	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_ListStores_Success(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	expected := []*entity.Store{testStore(), testStore()}

	storeRepo.EXPECT().ListStores(ctx).Return(expected, nil)

	stores, err := service.ListStores(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stores)
}
