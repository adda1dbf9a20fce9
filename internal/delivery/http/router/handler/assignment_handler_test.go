package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpvalidator "fieldforce/internal/delivery/http/validator"
	"fieldforce/internal/domain/entity"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAssignmentUsecase overrides only the methods a test exercises.
type stubAssignmentUsecase struct {
	usecase.AssignmentUsecase

	created *entity.Assignment
}

func (s *stubAssignmentUsecase) CreateAssignment(ctx context.Context, input *usecase.CreateAssignmentInput) (*entity.Assignment, error) {
	return s.created, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAssignmentHandler_CreateAssignment_Success(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	stub := &stubAssignmentUsecase{
		created: &entity.Assignment{
			ID:      uuid.New(),
			Date:    day,
			Status:  entity.AssignmentStatusPlanned,
			UserID:  uuid.New(),
			StoreID: uuid.New(),
		},
	}
	handler := NewAssignmentHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"date":"2026-03-14","userId":"` + stub.created.UserID.String() +
		`","storeId":"` + stub.created.StoreID.String() + `"}`
	c, rec := newTestContext(http.MethodPost, "/api/assignments", body)

	require.NoError(t, handler.CreateAssignment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-03-14"`)
	assert.Contains(t, rec.Body.String(), `"status":"PLANNED"`)
}

func TestAssignmentHandler_CreateAssignment_InvalidDate(t *testing.T) {
	handler := NewAssignmentHandler(&stubAssignmentUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"date":"14/03/2026","userId":"` + uuid.NewString() + `","storeId":"` + uuid.NewString() + `"}`
	c, rec := newTestContext(http.MethodPost, "/api/assignments", body)

	require.NoError(t, handler.CreateAssignment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DATE")
}

func TestAssignmentHandler_CreateAssignment_MissingUserRejected(t *testing.T) {
	handler := NewAssignmentHandler(&stubAssignmentUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"date":"2026-03-14","storeId":"` + uuid.NewString() + `"}`
	c, rec := newTestContext(http.MethodPost, "/api/assignments", body)

	require.NoError(t, handler.CreateAssignment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "UserID")
}

func TestAssignmentHandler_ListAssignments_InvalidPage(t *testing.T) {
	handler := NewAssignmentHandler(&stubAssignmentUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(http.MethodGet, "/api/assignments?page=abc", "")

	require.NoError(t, handler.ListAssignments(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PAGE")
}
