// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homeradar/config"
	"homeradar/internal/delivery/http/middleware"
	"homeradar/internal/delivery/http/router/handler"
	"homeradar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	ListingHandler  *handler.ListingHandler
	SettingsHandler *handler.SettingsHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	listingHandler  *handler.ListingHandler
	settingsHandler *handler.SettingsHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		listingHandler:  params.ListingHandler,
		settingsHandler: params.SettingsHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public browse routes
	e.GET("/listings", r.listingHandler.BrowseListings)
	e.GET("/listings/:id", r.listingHandler.GetListing)
	e.GET("/listings/:id/qr", r.listingHandler.ShareListingQR)

	// Listing management routes require authentication and the "owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleOwner)))
	{
		ownerGroup.POST("/listings", r.listingHandler.CreateListing)
		ownerGroup.GET("/listings", r.listingHandler.GetMyListings)
		ownerGroup.PUT("/listings/:id", r.listingHandler.UpdateListing)
		ownerGroup.DELETE("/listings/:id", r.listingHandler.DeleteListing)
	}

	// Bookmark routes require authentication and the "seeker" role
	seekerGroup := e.Group("/seeker")
	seekerGroup.Use(r.authMiddleware.Authenticate)
	seekerGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleSeeker)))
	{
		seekerGroup.POST("/listings/:id/save", r.listingHandler.SaveListing)
		seekerGroup.DELETE("/listings/:id/save", r.listingHandler.UnsaveListing)
		seekerGroup.GET("/saved", r.listingHandler.GetSavedListings)
	}

	// Settings routes require authentication for any role
	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.PUT("", r.settingsHandler.SaveSettings)
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PATCH("/location", r.settingsHandler.UpdateLocation)
		settingsGroup.POST("/disable", r.settingsHandler.DisableNotifications)
	}

	// Development-only synchronous dispatch triggers
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.POST("/dispatch/listing", r.testHandler.TriggerListingDispatch)
			testGroup.POST("/dispatch/seeker", r.testHandler.TriggerSeekerDispatch)
		}
	}
}
