package handler

import (
	"context"
	"log/slog"
	"net/http"

	"quaidirect/internal/delivery/http/middleware"
	"quaidirect/internal/delivery/http/response"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// FollowHandler holds dependencies for follow-related handlers
type FollowHandler struct {
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// FollowFisherman subscribes the user to a fisherman's drops
func (h *FollowHandler) FollowFisherman(c echo.Context) error {
	return h.follow(c, h.followUC.FollowFisherman)
}

// UnfollowFisherman removes the user's fisherman follow
func (h *FollowHandler) UnfollowFisherman(c echo.Context) error {
	return h.unfollow(c, h.followUC.UnfollowFisherman)
}

// FollowPort subscribes the user to drops near a port
func (h *FollowHandler) FollowPort(c echo.Context) error {
	return h.follow(c, h.followUC.FollowPort)
}

// UnfollowPort removes the user's port follow
func (h *FollowHandler) UnfollowPort(c echo.Context) error {
	return h.unfollow(c, h.followUC.UnfollowPort)
}

// FollowSpecies subscribes the user to drops offering a species
func (h *FollowHandler) FollowSpecies(c echo.Context) error {
	return h.follow(c, h.followUC.FollowSpecies)
}

// UnfollowSpecies removes the user's species follow
func (h *FollowHandler) UnfollowSpecies(c echo.Context) error {
	return h.unfollow(c, h.followUC.UnfollowSpecies)
}

// ListFollows retrieves all follow relations of the user
func (h *FollowHandler) ListFollows(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	follows, err := h.followUC.ListFollows(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, follows)
}

// follow runs one follow operation against the :id path parameter.
func (h *FollowHandler) follow(c echo.Context, op func(ctx context.Context, userID, targetID uuid.UUID) error) error {
	userID, targetID, err := h.parseFollowTarget(c)
	if err != nil {
		return err
	}

	if err := op(c.Request().Context(), userID, targetID); err != nil {
		if errors.Is(err, repository.ErrDuplicateFollow) {
			return domainerrors.ErrFollowAlreadyExists
		}

		return err
	}

	return response.Success(c, http.StatusCreated, map[string]string{"status": "following"})
}

// unfollow runs one unfollow operation against the :id path parameter.
func (h *FollowHandler) unfollow(c echo.Context, op func(ctx context.Context, userID, targetID uuid.UUID) error) error {
	userID, targetID, err := h.parseFollowTarget(c)
	if err != nil {
		return err
	}

	if err := op(c.Request().Context(), userID, targetID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return domainerrors.ErrFollowNotFound
		}

		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "unfollowed"})
}

func (h *FollowHandler) parseFollowTarget(c echo.Context) (userID, targetID uuid.UUID, err error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	targetID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return userID, targetID, nil
}
