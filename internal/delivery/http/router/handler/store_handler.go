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

// StoreHandler holds dependencies for store lookup handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

type storeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toStoreResponse(store *entity.Store) storeResponse {
	return storeResponse{
		ID:        store.ID,
		Name:      store.Name,
		Type:      store.Type.String(),
		City:      store.City,
		Latitude:  store.Latitude,
		Longitude: store.Longitude,
		Address:   store.Address,
		CreatedAt: store.CreatedAt,
	}
}

// ListStores handles GET /api/stores.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		items = append(items, toStoreResponse(store))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetStore handles GET /api/stores/:id.
func (h *StoreHandler) GetStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store id")
	}

	store, err := h.uc.GetStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponse(store), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
