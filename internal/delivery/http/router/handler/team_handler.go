package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldforce/internal/delivery/http/response"
	"fieldforce/internal/domain/entity"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeamHandler holds dependencies for user and hierarchy handlers.
type TeamHandler struct {
	uc     usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler, injected by Fx.
func NewTeamHandler(uc usecase.TeamUsecase, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		uc:     uc,
		logger: logger,
	}
}

type reassignManagerRequest struct {
	ManagerID uuid.UUID `json:"managerId" validate:"required"`
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	Region    string     `json:"region,omitempty"`
	ManagerID *uuid.UUID `json:"managerId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role.String(),
		Status:    string(user.Status),
		Region:    user.Region,
		ManagerID: user.ManagerID,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []userResponse {
	items := make([]userResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return items
}

// ListUsers handles GET /api/users.
func (h *TeamHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}

// GetUser handles GET /api/users/:id.
func (h *TeamHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// ListSubordinates handles GET /api/users/:id/subordinates.
func (h *TeamHandler) ListSubordinates(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
	}

	users, err := h.uc.ListSubordinates(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}

// ReassignManager handles PATCH /api/users/:id/manager.
func (h *TeamHandler) ReassignManager(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
	}

	var req reassignManagerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manager input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.uc.ReassignManager(c.Request().Context(), id, req.ManagerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Manager reassigned")
}
