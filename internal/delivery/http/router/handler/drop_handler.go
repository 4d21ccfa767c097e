package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"quaidirect/internal/delivery/http/middleware"
	"quaidirect/internal/delivery/http/response"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/usecase"
	"quaidirect/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// DropHandlerParams holds dependencies for DropHandler, injected by Fx.
type DropHandlerParams struct {
	fx.In

	DropUC usecase.DropUsecase
	Logger *slog.Logger
}

// DropHandler holds dependencies for drop-related handlers
type DropHandler struct {
	dropUC usecase.DropUsecase
	logger *slog.Logger
}

// NewDropHandler is the constructor for DropHandler
func NewDropHandler(params DropHandlerParams) *DropHandler {
	return &DropHandler{
		dropUC: params.DropUC,
		logger: params.Logger,
	}
}

// CreateDropRequest represents the request body for creating a drop
type CreateDropRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	SaleStartAt time.Time   `json:"sale_start_at" validate:"required"`
	PortID      *uuid.UUID  `json:"port_id"`
	SalePointID *uuid.UUID  `json:"sale_point_id"`
	SpeciesIDs  []uuid.UUID `json:"species_ids" validate:"required,min=1"`
}

// CreateDrop handles draft drop creation
func (h *DropHandler) CreateDrop(c echo.Context) error {
	fishermanID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateDropRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid drop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	drop, err := h.dropUC.CreateDrop(c.Request().Context(), &usecase.CreateDropInput{
		FishermanID: fishermanID,
		Title:       req.Title,
		SaleStartAt: req.SaleStartAt,
		PortID:      req.PortID,
		SalePointID: req.SalePointID,
		SpeciesIDs:  req.SpeciesIDs,
	})
	if err != nil {
		if errors.Is(err, impl.ErrInvalidSaleLocation) {
			return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
		}

		return err
	}

	return response.Success(c, http.StatusCreated, drop)
}

// PublishDrop transitions a draft drop to published
func (h *DropHandler) PublishDrop(c echo.Context) error {
	fishermanID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	dropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDropIDInvalid
	}

	if err := h.dropUC.PublishDrop(c.Request().Context(), fishermanID, dropID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "published"})
}

// ListDrops retrieves the authenticated fisherman's drops
func (h *DropHandler) ListDrops(c echo.Context) error {
	fishermanID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	limit, offset := parsePagination(c)

	drops, err := h.dropUC.GetFishermanDrops(c.Request().Context(), fishermanID, limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, drops)
}

// NotificationHistory retrieves fan-out run reports for the fisherman
func (h *DropHandler) NotificationHistory(c echo.Context) error {
	fishermanID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	limit, offset := parsePagination(c)

	runs, err := h.dropUC.GetNotificationHistory(c.Request().Context(), fishermanID, limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, runs)
}

func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxPageLimit)
		}
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
