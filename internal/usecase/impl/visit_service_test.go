package impl

import (
	"context"
	"testing"
	"time"

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

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	t         *testing.T
	service   usecase.VisitUsecase
	txManager *mockRepo.MockTransactionManager
	visitRepo *mockRepo.MockVisitRepository
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)

	service := NewVisitService(VisitServiceParams{
		TxManager: txManager,
		VisitRepo: visitRepo,
		Config:    testConfig(),
		Logger:    newDiscardLogger(),
	})

	return visitServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		visitRepo: visitRepo,
	}
}

func (f visitServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func floatPtr(v float64) *float64 { return &v }

func TestVisitService_SubmitVisit_WithinGeofence(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()

	input := &usecase.SubmitVisitInput{
		UserID:  user.ID,
		StoreID: store.ID,
		// Same point as the store, distance zero.
		CheckInLatitude:  floatPtr(store.Latitude),
		CheckInLongitude: floatPtr(store.Longitude),
		SalesAmount:      floatPtr(1250.50),
		Comment:          "Shelf restocked",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockVisitRepo.EXPECT().CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.VisitStatusCompleted, output.Visit.Status)
	assert.Equal(t, "Shelf restocked", output.Visit.Comment)
	// The visit date is stamped server-side at submission time.
	assert.WithinDuration(t, time.Now().UTC(), output.Visit.VisitDate, time.Minute)
	require.NotNil(t, output.Geofence)
	assert.False(t, output.Geofence.OutsideRadius)
	assert.Equal(t, int64(0), output.Geofence.DistanceMeters)
	assert.InDelta(t, 500, output.Geofence.RadiusMeters, 0.001)
}

func TestVisitService_SubmitVisit_OutsideGeofenceAnnotatesComment(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()

	input := &usecase.SubmitVisitInput{
		UserID:  user.ID,
		StoreID: store.ID,
		// Roughly 1.2 km away from the store.
		CheckInLatitude:  floatPtr(33.5800),
		CheckInLongitude: floatPtr(-7.6000),
		Comment:          "Promo installed",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockVisitRepo.EXPECT().CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	require.NoError(t, err)
	// Admission is never blocked by a geofence breach.
	assert.Equal(t, entity.VisitStatusCompleted, output.Visit.Status)
	require.NotNil(t, output.Geofence)
	assert.True(t, output.Geofence.OutsideRadius)
	assert.Greater(t, output.Geofence.DistanceMeters, int64(500))
	assert.Contains(t, output.Visit.Comment, "Promo installed")
	assert.Contains(t, output.Visit.Comment, "Geofence warning")
	assert.Contains(t, output.Visit.Comment, "allowed radius: 500 m")
}

func TestVisitService_SubmitVisit_NoCoordinatesSkipsGeofence(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RoleSFOS)
	store := testStore()

	input := &usecase.SubmitVisitInput{UserID: user.ID, StoreID: store.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockVisitRepo.EXPECT().CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, output.Geofence)
	assert.Equal(t, entity.VisitStatusCompleted, output.Visit.Status)
}

func TestVisitService_SubmitVisit_UnknownStoreRejected(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.SubmitVisitInput{UserID: uuid.New(), StoreID: storeID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_SubmitVisit_StampsAssignment(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	assignmentID := uuid.New()

	firstCheckIn := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	assignment := &entity.Assignment{
		ID:          assignmentID,
		Status:      entity.AssignmentStatusInProgress,
		UserID:      user.ID,
		StoreID:     store.ID,
		CheckInTime: &firstCheckIn,
	}

	input := &usecase.SubmitVisitInput{
		UserID:       user.ID,
		StoreID:      store.ID,
		AssignmentID: &assignmentID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockAssignmentRepo.EXPECT().FindAssignmentByID(ctx, assignmentID).Return(assignment, nil)
		mockAssignmentRepo.EXPECT().
			UpdateAssignment(ctx, mock.AnythingOfType("*entity.Assignment")).
			Return(nil)
		mockVisitRepo.EXPECT().CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Visit.AssignmentID)
	assert.Equal(t, assignmentID, *output.Visit.AssignmentID)
	// The first check-in is preserved, the check-out follows the latest submission.
	assert.Equal(t, firstCheckIn, *assignment.CheckInTime)
	require.NotNil(t, assignment.CheckOutTime)
	assert.True(t, assignment.CheckOutTime.After(firstCheckIn))
}

func TestVisitService_SubmitVisit_UnknownAssignmentLinkSkipped(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	user := schedulableUser(entity.RolePromoter)
	store := testStore()
	assignmentID := uuid.New()

	input := &usecase.SubmitVisitInput{
		UserID:       user.ID,
		StoreID:      store.ID,
		AssignmentID: &assignmentID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AssignmentRepo().Return(mockAssignmentRepo)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockStoreRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
		mockUserRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		mockAssignmentRepo.EXPECT().
			FindAssignmentByID(ctx, assignmentID).
			Return(nil, repository.ErrAssignmentNotFound)
		mockVisitRepo.EXPECT().CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	output, err := fx.service.SubmitVisit(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, output.Visit.AssignmentID)
}

func TestVisitService_GetVisit_NotFound(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().FindVisitByID(ctx, visitID).Return(nil, repository.ErrVisitNotFound)

	visit, err := fx.service.GetVisit(ctx, visitID)

	assert.Nil(t, visit)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitNotFound))
}

func TestVisitService_UpdateVisitStatus_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visitID := uuid.New()
	visit := &entity.Visit{ID: visitID, Status: entity.VisitStatusCompleted}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockVisitRepo := mockRepo.NewMockVisitRepository(t)
		factory.EXPECT().VisitRepo().Return(mockVisitRepo)
		mockVisitRepo.EXPECT().FindVisitByID(ctx, visitID).Return(visit, nil)
		mockVisitRepo.EXPECT().UpdateVisit(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	})

	updated, err := fx.service.UpdateVisitStatus(ctx, visitID, "VALIDATED")

	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusValidated, updated.Status)
}

func TestVisitService_UpdateVisitStatus_InvalidStatus(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	updated, err := fx.service.UpdateVisitStatus(ctx, uuid.New(), "APPROVED")

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestVisitService_VisitStats(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	expected := &repository.VisitStats{TotalVisits: 12, TotalSales: 30500.75, AvgShelfShare: 0.42}

	fx.visitRepo.EXPECT().VisitStats(ctx).Return(expected, nil)

	stats, err := fx.service.VisitStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
