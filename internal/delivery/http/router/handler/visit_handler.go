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

// VisitHandler holds dependencies for visit-related handlers.
type VisitHandler struct {
	uc     usecase.VisitUsecase
	logger *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitVisitRequest struct {
	UserID           uuid.UUID  `json:"userId" validate:"required"`
	StoreID          uuid.UUID  `json:"storeId" validate:"required"`
	AssignmentID     *uuid.UUID `json:"assignmentId,omitempty"`
	SalesAmount      *float64   `json:"salesAmount,omitempty" validate:"omitempty,min=0"`
	ShelfShare       *float64   `json:"shelfShare,omitempty" validate:"omitempty,min=0,max=100"`
	InteractionCount *int       `json:"interactionCount,omitempty" validate:"omitempty,min=0"`
	Comment          string     `json:"comment"`
	CheckInLatitude  *float64   `json:"checkInLatitude,omitempty" validate:"omitempty,min=-90,max=90"`
	CheckInLongitude *float64   `json:"checkInLongitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

type updateVisitStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type visitResponse struct {
	ID               uuid.UUID  `json:"id"`
	VisitDate        time.Time  `json:"visitDate"`
	Status           string     `json:"status"`
	SalesAmount      *float64   `json:"salesAmount,omitempty"`
	ShelfShare       *float64   `json:"shelfShare,omitempty"`
	InteractionCount *int       `json:"interactionCount,omitempty"`
	Comment          string     `json:"comment,omitempty"`
	CheckInLatitude  *float64   `json:"checkInLatitude,omitempty"`
	CheckInLongitude *float64   `json:"checkInLongitude,omitempty"`
	UserID           uuid.UUID  `json:"userId"`
	StoreID          uuid.UUID  `json:"storeId"`
	AssignmentID     *uuid.UUID `json:"assignmentId,omitempty"`
}

// submitVisitResponse extends the visit payload with the advisory geofence
// outcome when check-in coordinates were evaluated.
type submitVisitResponse struct {
	visitResponse
	DistanceToStore *int64   `json:"distance_to_store,omitempty"`
	GeofenceRadius  *float64 `json:"geofence_radius,omitempty"`
	OutsideGeofence *bool    `json:"outside_geofence,omitempty"`
}

func toVisitResponse(visit *entity.Visit) visitResponse {
	return visitResponse{
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

func toVisitResponses(visits []*entity.Visit) []visitResponse {
	items := make([]visitResponse, 0, len(visits))
	for _, visit := range visits {
		items = append(items, toVisitResponse(visit))
	}

	return items
}

// SubmitVisit handles POST /api/visits/submit.
func (h *VisitHandler) SubmitVisit(c echo.Context) error {
	var req submitVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitVisitInput{
		UserID:           req.UserID,
		StoreID:          req.StoreID,
		AssignmentID:     req.AssignmentID,
		SalesAmount:      req.SalesAmount,
		ShelfShare:       req.ShelfShare,
		InteractionCount: req.InteractionCount,
		Comment:          req.Comment,
		CheckInLatitude:  req.CheckInLatitude,
		CheckInLongitude: req.CheckInLongitude,
	}

	output, err := h.uc.SubmitVisit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := submitVisitResponse{visitResponse: toVisitResponse(output.Visit)}
	if output.Geofence != nil {
		resp.DistanceToStore = &output.Geofence.DistanceMeters
		resp.GeofenceRadius = &output.Geofence.RadiusMeters
		resp.OutsideGeofence = &output.Geofence.OutsideRadius
	}

	return response.Success(c, http.StatusCreated, resp, "Visit submitted")
}

// GetVisit handles GET /api/visits/:id.
func (h *VisitHandler) GetVisit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_VISIT_ID", "Invalid visit id")
	}

	visit, err := h.uc.GetVisit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponse(visit), "")
}

// ListVisits handles GET /api/visits.
func (h *VisitHandler) ListVisits(c echo.Context) error {
	visits, err := h.uc.ListVisits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "")
}

// ListVisitsByUser handles GET /api/visits/user/:userId.
func (h *VisitHandler) ListVisitsByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
	}

	visits, err := h.uc.ListVisitsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "")
}

// ListVisitsByStore handles GET /api/visits/store/:storeId.
func (h *VisitHandler) ListVisitsByStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store id")
	}

	visits, err := h.uc.ListVisitsByStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponses(visits), "")
}

type visitStatsResponse struct {
	TotalVisits   int64   `json:"totalVisits"`
	TotalSales    float64 `json:"totalSales"`
	AvgShelfShare float64 `json:"avgShelfShare"`
}

// VisitStats handles GET /api/visits/stats.
func (h *VisitHandler) VisitStats(c echo.Context) error {
	stats, err := h.uc.VisitStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visitStatsResponse{
		TotalVisits:   stats.TotalVisits,
		TotalSales:    stats.TotalSales,
		AvgShelfShare: stats.AvgShelfShare,
	}, "")
}

// UpdateVisitStatus handles PATCH /api/visits/:id/status, moving a visit
// through supervisor review.
func (h *VisitHandler) UpdateVisitStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_VISIT_ID", "Invalid visit id")
	}

	var req updateVisitStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visit, err := h.uc.UpdateVisitStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVisitResponse(visit), "Visit status updated")
}
