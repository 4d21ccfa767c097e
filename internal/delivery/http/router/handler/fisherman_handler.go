package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quaidirect/internal/delivery/http/response"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FishermanHandlerParams holds dependencies for FishermanHandler, injected by Fx.
type FishermanHandlerParams struct {
	fx.In

	FishermanUC usecase.FishermanUsecase
	Logger      *slog.Logger
}

// FishermanHandler holds dependencies for fisherman-related handlers
type FishermanHandler struct {
	fishermanUC usecase.FishermanUsecase
	logger      *slog.Logger
}

// NewFishermanHandler is the constructor for FishermanHandler
func NewFishermanHandler(params FishermanHandlerParams) *FishermanHandler {
	return &FishermanHandler{
		fishermanUC: params.FishermanUC,
		logger:      params.Logger,
	}
}

// GetFisherman retrieves a fisherman's public profile
func (h *FishermanHandler) GetFisherman(c echo.Context) error {
	fishermanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	fisherman, err := h.fishermanUC.GetFisherman(c.Request().Context(), fishermanID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, fisherman)
}

// GetFollowQRCode renders a printable QR code pointing at the fisherman's
// public follow page
func (h *FishermanHandler) GetFollowQRCode(c echo.Context) error {
	fishermanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed <= 0 || parsed > 2048 {
			return domainerrors.ErrValidationFailed.WithDetails("size must be between 1 and 2048")
		}
		size = parsed
	}

	png, err := h.fishermanUC.GetFollowQRCode(c.Request().Context(), fishermanID, size)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
