package handler

import (
	"log/slog"
	"net/http"

	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotifyHandlerParams holds dependencies for NotifyHandler, injected by Fx.
type NotifyHandlerParams struct {
	fx.In

	FanoutUC usecase.FanoutUsecase
	Logger   *slog.Logger
}

// NotifyHandler exposes the internal fan-out trigger. It is called by the
// worker, by operators, and by database triggers holding the anonymous key.
type NotifyHandler struct {
	fanoutUC usecase.FanoutUsecase
	logger   *slog.Logger
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	return &NotifyHandler{
		fanoutUC: params.FanoutUC,
		logger:   params.Logger,
	}
}

// NotifyDropRequest represents the request body of the fan-out trigger
type NotifyDropRequest struct {
	DropID string `json:"dropId"`
}

// NotifyDropResponse represents the per-channel outcome of a fan-out run.
// Callers are external systems, so the body shape is a fixed contract.
type NotifyDropResponse struct {
	Message string `json:"message"`
	Push    struct {
		Targeted int `json:"targeted"`
		Sent     int `json:"sent"`
	} `json:"push"`
	Email struct {
		Sent int `json:"sent"`
	} `json:"email"`
}

// NotifyDrop triggers the notification fan-out for a published drop
func (h *NotifyHandler) NotifyDrop(c echo.Context) error {
	var req NotifyDropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	if req.DropID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "dropId is required"})
	}

	dropID, err := uuid.Parse(req.DropID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "dropId must be a valid UUID"})
	}

	result, err := h.fanoutUC.DispatchDropNotifications(c.Request().Context(), dropID)
	if err != nil {
		h.logger.Error("fan-out failed",
			slog.String("drop_id", dropID.String()),
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resp := NotifyDropResponse{Message: "notifications dispatched"}
	resp.Push.Targeted = result.PushTargeted
	resp.Push.Sent = result.PushSent
	resp.Email.Sent = result.EmailSent

	return c.JSON(http.StatusOK, resp)
}
