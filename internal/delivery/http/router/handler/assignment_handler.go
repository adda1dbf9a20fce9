// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fieldforce/internal/delivery/http/response"
	"fieldforce/internal/domain/entity"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// AssignmentHandler holds dependencies for assignment-related handlers.
type AssignmentHandler struct {
	uc     usecase.AssignmentUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.AssignmentUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		uc:     uc,
		logger: logger,
	}
}

type taskDraftRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

type assignmentRequest struct {
	Date    string             `json:"date" validate:"required"`
	UserID  uuid.UUID          `json:"userId" validate:"required"`
	StoreID uuid.UUID          `json:"storeId" validate:"required"`
	Tasks   []taskDraftRequest `json:"tasks"`
}

type taskUpdateRequest struct {
	TaskID uuid.UUID `json:"taskId"`
	Status string    `json:"status"`
}

type taskItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type assignmentResponse struct {
	ID           uuid.UUID          `json:"id"`
	Date         string             `json:"date"`
	Status       string             `json:"status"`
	CheckInTime  *time.Time         `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `json:"checkOutTime,omitempty"`
	UserID       uuid.UUID          `json:"userId"`
	StoreID      uuid.UUID          `json:"storeId"`
	Tasks        []taskItemResponse `json:"tasks"`
}

type assignmentPageResponse struct {
	Items      []assignmentResponse `json:"items"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalItems int64                `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
}

func toAssignmentResponse(assignment *entity.Assignment) assignmentResponse {
	tasks := make([]taskItemResponse, 0, len(assignment.Tasks))
	for _, task := range assignment.Tasks {
		tasks = append(tasks, taskItemResponse{
			ID:          task.ID,
			Description: task.Description,
			Status:      task.Status.String(),
		})
	}

	return assignmentResponse{
		ID:           assignment.ID,
		Date:         assignment.Date.Format(dateLayout),
		Status:       assignment.Status.String(),
		CheckInTime:  assignment.CheckInTime,
		CheckOutTime: assignment.CheckOutTime,
		UserID:       assignment.UserID,
		StoreID:      assignment.StoreID,
		Tasks:        tasks,
	}
}

func toAssignmentResponses(assignments []*entity.Assignment) []assignmentResponse {
	items := make([]assignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		items = append(items, toAssignmentResponse(assignment))
	}

	return items
}

func (req *assignmentRequest) toInput() (*usecase.CreateAssignmentInput, error) {
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, errors.Wrap(err, "invalid date format, expected YYYY-MM-DD")
		}
		date = parsed
	}

	tasks := make([]usecase.TaskDraftInput, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		tasks = append(tasks, usecase.TaskDraftInput{
			Description: task.Description,
			Status:      task.Status,
		})
	}

	return &usecase.CreateAssignmentInput{
		Date:    date,
		UserID:  req.UserID,
		StoreID: req.StoreID,
		Tasks:   tasks,
	}, nil
}

// ListAssignments handles GET /api/assignments with optional date, userId and
// storeId filters plus pagination.
func (h *AssignmentHandler) ListAssignments(c echo.Context) error {
	input := &usecase.ListAssignmentsInput{}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Invalid date format, expected YYYY-MM-DD")
		}
		input.Date = &date
	}
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
		}
		input.UserID = &userID
	}
	if raw := c.QueryParam("storeId"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store id")
		}
		input.StoreID = &storeID
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_PAGE", "Invalid page number")
		}
		input.Page = page
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_SIZE", "Invalid page size")
		}
		input.Size = size
	}

	page, err := h.uc.ListAssignments(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignmentPageResponse{
		Items:      toAssignmentResponses(page.Items),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}, "")
}

// CreateAssignment handles POST /api/assignments.
func (h *AssignmentHandler) CreateAssignment(c echo.Context) error {
	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	created, err := h.uc.CreateAssignment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAssignmentResponse(created), "Assignment created")
}

// CreateAssignmentsBulk handles POST /api/assignments/bulk. The whole batch
// succeeds or fails together.
func (h *AssignmentHandler) CreateAssignmentsBulk(c echo.Context) error {
	var reqs []assignmentRequest
	if err := c.Bind(&reqs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment batch input")
	}

	inputs := make([]*usecase.CreateAssignmentInput, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		input, err := reqs[i].toInput()
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", err.Error())
		}
		inputs = append(inputs, input)
	}

	created, err := h.uc.CreateAssignmentsBulk(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAssignmentResponses(created), "Assignments created")
}

// UpdateAssignment handles PUT /api/assignments/:id.
func (h *AssignmentHandler) UpdateAssignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ASSIGNMENT_ID", "Invalid assignment id")
	}

	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	updated, err := h.uc.UpdateAssignment(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssignmentResponse(updated), "Assignment updated")
}

// DeleteAssignment handles DELETE /api/assignments/:id. Unknown ids delete
// silently.
func (h *AssignmentHandler) DeleteAssignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ASSIGNMENT_ID", "Invalid assignment id")
	}

	if err := h.uc.DeleteAssignment(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateTaskStatuses handles PATCH /api/assignments/:id/tasks.
func (h *AssignmentHandler) UpdateTaskStatuses(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ASSIGNMENT_ID", "Invalid assignment id")
	}

	var reqs []taskUpdateRequest
	if err := c.Bind(&reqs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task update input")
	}

	updates := make([]usecase.TaskUpdateInput, 0, len(reqs))
	for _, req := range reqs {
		updates = append(updates, usecase.TaskUpdateInput{
			TaskID: req.TaskID,
			Status: req.Status,
		})
	}

	updated, err := h.uc.UpdateTaskStatuses(c.Request().Context(), id, updates)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssignmentResponse(updated), "Task statuses updated")
}
