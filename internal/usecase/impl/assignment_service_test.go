package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldforce/config"
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

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Geofence:   &config.GeofenceConfig{RadiusMeters: 500},
		Pagination: &config.PaginationConfig{DefaultSize: 20, MaxSize: 100},
	}
}

// assignmentServiceFixtures holds all test dependencies for assignment service tests.
type assignmentServiceFixtures struct {
	t              *testing.T
	service        usecase.AssignmentUsecase
	txManager      *mockRepo.MockTransactionManager
	assignmentRepo *mockRepo.MockAssignmentRepository
	userRepo       *mockRepo.MockUserRepository
	storeRepo      *mockRepo.MockStoreRepository
}

func createTestAssignmentService(t *testing.T) assignmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewAssignmentService(AssignmentServiceParams{
		TxManager:      txManager,
		AssignmentRepo: assignmentRepo,
		UserRepo:       userRepo,
		StoreRepo:      storeRepo,
		Config:         testConfig(),
		Logger:         newDiscardLogger(),
	})

	return assignmentServiceFixtures{
		t:              t,
		service:        service,
		txManager:      txManager,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		storeRepo:      storeRepo,
	}
}

// onExecute arranges the transaction manager to run the unit of work against
// a factory configured by setup, propagating the unit's error.
func (f assignmentServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func schedulableUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		FullName: "Test User",
		Email:    "test@example.com",
		Role:     role,
		Status:   entity.UserStatusActive,
	}
}

func testStore() *entity.Store {
	return &entity.Store{
		ID:        uuid.New(),
		Name:      "Marjane Californie",
		Type:      entity.StoreTypeOrganized,
		City:      "Casablanca",
		Latitude:  33.5731,
		Longitude: -7.5898,
	}
}

func TestAssignmentService_CreateAssignment_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	date := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	input := &usecase.CreateAssignmentInput{
		Date:    date,
		UserID:  user.ID,
		StoreID: store.ID,
		Tasks: []usecase.TaskDraftInput{
			{Description: "Check shelf facings"},
			{Description: "Install promo display", Status: "IN_PROGRESS"},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)

		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, entity.Day(date)).
			Return(nil, nil)
		mockAssignmentRepo.EXPECT().
			CreateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(nil)
	})

	created, err := fx.service.CreateAssignment(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.AssignmentStatusPlanned, created.Status)
	assert.Equal(t, entity.Day(date), created.Date)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, store.ID, created.StoreID)
	require.Len(t, created.Tasks, 2)
	assert.Equal(t, entity.TaskStatusTodo, created.Tasks[0].Status)
	assert.Equal(t, entity.TaskStatusInProgress, created.Tasks[1].Status)
}

func TestAssignmentService_CreateAssignment_DateRequired(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.CreateAssignmentInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {})

	created, err := fx.service.CreateAssignment(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrDateRequired))
}

func TestAssignmentService_CreateAssignment_UserNotFound(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAssignmentInput{
		Date:    time.Now(),
		UserID:  userID,
		StoreID: uuid.New(),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	created, err := fx.service.CreateAssignment(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAssignmentService_CreateAssignment_RoleNotSchedulable(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	supervisor := schedulableUser(entity.RoleSupervisor)
	store := testStore()
	input := &usecase.CreateAssignmentInput{
		Date:    time.Now(),
		UserID:  supervisor.ID,
		StoreID: store.ID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, supervisor.ID).Return(supervisor, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	})

	created, err := fx.service.CreateAssignment(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotSchedulable))
}

func TestAssignmentService_CreateAssignment_Overlap(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RoleSFOS)
	store := testStore()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	input := &usecase.CreateAssignmentInput{Date: date, UserID: user.ID, StoreID: store.ID}

	existing := &entity.Assignment{ID: uuid.New(), Date: date, UserID: user.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, date).
			Return([]*entity.Assignment{existing}, nil)
	})

	created, err := fx.service.CreateAssignment(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentOverlap))
	assert.Contains(t, err.Error(), "2026-03-14")
}

func TestAssignmentService_CreateAssignment_DuplicateConstraint(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	input := &usecase.CreateAssignmentInput{Date: time.Now(), UserID: user.ID, StoreID: store.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, mock.AnythingOfType("time.Time")).
			Return(nil, nil)
		mockAssignmentRepo.EXPECT().
			CreateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(repository.ErrDuplicateAssignment)
	})

	created, err := fx.service.CreateAssignment(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentOverlap))
}

func TestAssignmentService_CreateAssignmentsBulk_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	userA := schedulableUser(entity.RolePromoter)
	userB := schedulableUser(entity.RoleSFOS)
	store := testStore()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	inputs := []*usecase.CreateAssignmentInput{
		{Date: date, UserID: userA.ID, StoreID: store.ID},
		{Date: date, UserID: userB.ID, StoreID: store.ID},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, userA.ID).Return(userA, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, userB.ID).Return(userB, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, userA.ID, date).Return(nil, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, userB.ID, date).Return(nil, nil)
		mockAssignmentRepo.EXPECT().
			CreateAssignments(ctx, mock.AnythingOfType("[]*entity.Assignment")).
			Return(nil)
	})

	created, err := fx.service.CreateAssignmentsBulk(ctx, inputs)

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, userA.ID, created[0].UserID)
	assert.Equal(t, userB.ID, created[1].UserID)
}

func TestAssignmentService_CreateAssignmentsBulk_FailFast(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	userA := schedulableUser(entity.RolePromoter)
	unknownUserID := uuid.New()
	store := testStore()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	inputs := []*usecase.CreateAssignmentInput{
		{Date: date, UserID: userA.ID, StoreID: store.ID},
		{Date: date, UserID: unknownUserID, StoreID: store.ID},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, userA.ID).Return(userA, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, unknownUserID).Return(nil, repository.ErrUserNotFound)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, userA.ID, date).Return(nil, nil)
	})

	created, err := fx.service.CreateAssignmentsBulk(ctx, inputs)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAssignmentService_CreateAssignmentsBulk_DuplicatePairRejected(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	inputs := []*usecase.CreateAssignmentInput{
		{Date: date, UserID: user.ID, StoreID: store.ID},
		{Date: date, UserID: user.ID, StoreID: store.ID},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil).Times(2)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil).Times(2)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, date).Return(nil, nil).Times(2)
	})

	created, err := fx.service.CreateAssignmentsBulk(ctx, inputs)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentOverlap))
}

func TestAssignmentService_UpdateAssignment_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assignmentID := uuid.New()

	existing := &entity.Assignment{
		ID:      assignmentID,
		Date:    date.AddDate(0, 0, -1),
		Status:  entity.AssignmentStatusPlanned,
		UserID:  user.ID,
		StoreID: store.ID,
	}

	input := &usecase.CreateAssignmentInput{
		Date:    date,
		UserID:  user.ID,
		StoreID: store.ID,
		Tasks: []usecase.TaskDraftInput{
			{Description: "Verify pricing", Status: "DONE"},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockAssignmentRepo.EXPECT().FindAssignmentByID(ctx, assignmentID).Return(existing, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		// The assignment being re-dated does not conflict with itself.
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, date).
			Return([]*entity.Assignment{existing}, nil)
		mockAssignmentRepo.EXPECT().
			UpdateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(nil)
	})

	updated, err := fx.service.UpdateAssignment(ctx, assignmentID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, date, updated.Date)
	assert.Equal(t, entity.AssignmentStatusDone, updated.Status)
	require.Len(t, updated.Tasks, 1)
	assert.Equal(t, entity.TaskStatusDone, updated.Tasks[0].Status)
}

func TestAssignmentService_UpdateAssignment_ClearingTasksResetsStatus(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assignmentID := uuid.New()

	existing := &entity.Assignment{
		ID:      assignmentID,
		Date:    date,
		Status:  entity.AssignmentStatusDone,
		UserID:  user.ID,
		StoreID: store.ID,
		Tasks: []entity.TaskItem{
			{ID: uuid.New(), Description: "Old task", Status: entity.TaskStatusDone},
		},
	}

	input := &usecase.CreateAssignmentInput{Date: date, UserID: user.ID, StoreID: store.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockAssignmentRepo.EXPECT().FindAssignmentByID(ctx, assignmentID).Return(existing, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentsByUserAndDate(ctx, user.ID, date).
			Return([]*entity.Assignment{existing}, nil)
		mockAssignmentRepo.EXPECT().
			UpdateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(nil)
	})

	updated, err := fx.service.UpdateAssignment(ctx, assignmentID, input)

	require.NoError(t, err)
	assert.Empty(t, updated.Tasks)
	assert.Equal(t, entity.AssignmentStatusPlanned, updated.Status)
}

func TestAssignmentService_UpdateAssignment_NotFound(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	assignmentID := uuid.New()
	input := &usecase.CreateAssignmentInput{Date: time.Now(), UserID: uuid.New(), StoreID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockAssignmentRepo.EXPECT().
			FindAssignmentByID(ctx, assignmentID).
			Return(nil, repository.ErrAssignmentNotFound)
	})

	updated, err := fx.service.UpdateAssignment(ctx, assignmentID, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentNotFound))
}

func TestAssignmentService_UpdateTaskStatuses_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	assignmentID := uuid.New()
	taskA := uuid.New()
	taskB := uuid.New()

	assignment := &entity.Assignment{
		ID:     assignmentID,
		Status: entity.AssignmentStatusPlanned,
		Tasks: []entity.TaskItem{
			{ID: taskA, Description: "Facings", Status: entity.TaskStatusTodo},
			{ID: taskB, Description: "Promo display", Status: entity.TaskStatusTodo},
		},
	}

	updates := []usecase.TaskUpdateInput{
		{TaskID: taskA, Status: "DONE"},
		{TaskID: uuid.New(), Status: "DONE"}, // unknown id, ignored
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockAssignmentRepo.EXPECT().FindAssignmentByID(ctx, assignmentID).Return(assignment, nil)
		mockAssignmentRepo.EXPECT().
			UpdateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(nil)
	})

	result, err := fx.service.UpdateTaskStatuses(ctx, assignmentID, updates)

	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, result.Tasks[0].Status)
	assert.Equal(t, entity.TaskStatusTodo, result.Tasks[1].Status)
	assert.Equal(t, entity.AssignmentStatusInProgress, result.Status)
}

func TestAssignmentService_UpdateTaskStatuses_EmptyUpdatesUnchanged(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	assignmentID := uuid.New()
	assignment := &entity.Assignment{
		ID:     assignmentID,
		Status: entity.AssignmentStatusPlanned,
		Tasks: []entity.TaskItem{
			{ID: uuid.New(), Description: "Facings", Status: entity.TaskStatusTodo},
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		mockAssignmentRepo.EXPECT().FindAssignmentByID(ctx, assignmentID).Return(assignment, nil)
	})

	result, err := fx.service.UpdateTaskStatuses(ctx, assignmentID, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.AssignmentStatusPlanned, result.Status)
	assert.Equal(t, entity.TaskStatusTodo, result.Tasks[0].Status)
}

func TestAssignmentService_UpdateTaskStatuses_InvalidStatus(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	updates := []usecase.TaskUpdateInput{{TaskID: uuid.New(), Status: "BOGUS"}}

	result, err := fx.service.UpdateTaskStatuses(ctx, uuid.New(), updates)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestAssignmentService_DeleteAssignment_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	assignmentID := uuid.New()

	fx.assignmentRepo.EXPECT().DeleteAssignment(ctx, assignmentID).Return(nil)

	err := fx.service.DeleteAssignment(ctx, assignmentID)

	require.NoError(t, err)
}

func TestAssignmentService_DeleteAssignment_UnknownIDIsNoOp(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	assignmentID := uuid.New()

	fx.assignmentRepo.EXPECT().
		DeleteAssignment(ctx, assignmentID).
		Return(repository.ErrAssignmentNotFound)

	err := fx.service.DeleteAssignment(ctx, assignmentID)

	require.NoError(t, err)
}

func TestAssignmentService_ListAssignments_DateAndUserPrecedence(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	day := entity.Day(date)
	storeID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.assignmentRepo.EXPECT().
		ListAssignments(ctx, repository.AssignmentFilter{Date: &day, UserID: &user.ID}, 0, 20).
		Return([]*entity.Assignment{{ID: uuid.New()}}, int64(1), nil)

	// StoreID is present too, but the (date, user) pair takes precedence.
	page, err := fx.service.ListAssignments(ctx, &usecase.ListAssignmentsInput{
		Date:    &date,
		UserID:  &user.ID,
		StoreID: &storeID,
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAssignmentService_ListAssignments_SizeClamped(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()

	fx.assignmentRepo.EXPECT().
		ListAssignments(ctx, repository.AssignmentFilter{}, 0, 100).
		Return(nil, int64(0), nil)

	page, err := fx.service.ListAssignments(ctx, &usecase.ListAssignmentsInput{Page: 0, Size: 1000})

	require.NoError(t, err)
	assert.Equal(t, 100, page.Size)
	assert.Equal(t, 0, page.TotalPages)
}

func TestAssignmentService_ListAssignments_UnknownUser(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Now()

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	page, err := fx.service.ListAssignments(ctx, &usecase.ListAssignmentsInput{Date: &date, UserID: &userID})

	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
