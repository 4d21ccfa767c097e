package handler

import (
	"log/slog"
	"net/http"

	"quaidirect/internal/delivery/http/middleware"
	"quaidirect/internal/delivery/http/response"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice handles push registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	registration, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, registration)
}

// ListDevices handles retrieving all registrations of the user
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	registrations, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, registrations)
}

// RemoveDevice handles removing a registration owned by the user
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, registrationID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "removed"})
}
