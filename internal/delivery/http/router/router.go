// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quaidirect/internal/delivery/http/middleware"
	"quaidirect/internal/delivery/http/router/handler"
	"quaidirect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotifyHandler    *handler.NotifyHandler
	DropHandler      *handler.DropHandler
	FollowHandler    *handler.FollowHandler
	DeviceHandler    *handler.DeviceHandler
	FishermanHandler *handler.FishermanHandler

	AuthMiddleware         *middleware.AuthMiddleware
	InternalAuthMiddleware *middleware.InternalAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notifyHandler    *handler.NotifyHandler
	dropHandler      *handler.DropHandler
	followHandler    *handler.FollowHandler
	deviceHandler    *handler.DeviceHandler
	fishermanHandler *handler.FishermanHandler

	authMiddleware         *middleware.AuthMiddleware
	internalAuthMiddleware *middleware.InternalAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notifyHandler:          params.NotifyHandler,
		dropHandler:            params.DropHandler,
		followHandler:          params.FollowHandler,
		deviceHandler:          params.DeviceHandler,
		fishermanHandler:       params.FishermanHandler,
		authMiddleware:         params.AuthMiddleware,
		internalAuthMiddleware: params.InternalAuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public fisherman pages (profile, printable follow QR code)
	e.GET("/fishermen/:id", r.fishermanHandler.GetFisherman)
	e.GET("/fishermen/:id/qrcode", r.fishermanHandler.GetFollowQRCode)

	// Internal endpoints guarded by the shared secret / anonymous key.
	// The credential check runs before any handler work touches the database.
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.internalAuthMiddleware.Require)
	{
		internalGroup.POST("/notify-drop", r.notifyHandler.NotifyDrop)
	}

	// Buyer routes that require authentication
	followGroup := e.Group("/follows")
	followGroup.Use(r.authMiddleware.Authenticate)
	{
		followGroup.GET("", r.followHandler.ListFollows)
		followGroup.POST("/fishermen/:id", r.followHandler.FollowFisherman)
		followGroup.DELETE("/fishermen/:id", r.followHandler.UnfollowFisherman)
		followGroup.POST("/ports/:id", r.followHandler.FollowPort)
		followGroup.DELETE("/ports/:id", r.followHandler.UnfollowPort)
		followGroup.POST("/species/:id", r.followHandler.FollowSpecies)
		followGroup.DELETE("/species/:id", r.followHandler.UnfollowSpecies)
	}

	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Fisherman routes that require authentication and the "fisherman" role
	dropGroup := e.Group("/drops")
	dropGroup.Use(r.authMiddleware.Authenticate)
	dropGroup.Use(r.authMiddleware.RequireRole(entity.RoleFisherman))
	{
		dropGroup.POST("", r.dropHandler.CreateDrop)
		dropGroup.GET("", r.dropHandler.ListDrops)
		dropGroup.POST("/:id/publish", r.dropHandler.PublishDrop)
		dropGroup.GET("/notifications", r.dropHandler.NotificationHistory)
	}
}
