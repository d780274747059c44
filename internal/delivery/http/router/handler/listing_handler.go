// Package handler contains the HTTP handlers for the public API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"homeradar/internal/delivery/http/middleware"
	"homeradar/internal/delivery/http/response"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for listing-related handlers
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateListingRequest represents the request body for publishing a listing
type CreateListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Rent        float64 `json:"rent" validate:"required,gt=0"`
	Address     string  `json:"address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateListing handles publishing a new listing
func (h *ListingHandler) CreateListing(c echo.Context) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), ownerID, usecase.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Rent:        req.Rent,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing published successfully")
}

// GetListing handles retrieving a single listing
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Listing not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// BrowseListings handles retrieving active listings with pagination
func (h *ListingHandler) BrowseListings(c echo.Context) error {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	listings, err := h.uc.BrowseListings(c.Request().Context(), limit, offset)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// GetMyListings handles retrieving the authenticated owner's listings
func (h *ListingHandler) GetMyListings(c echo.Context) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	listings, err := h.uc.GetOwnerListings(c.Request().Context(), ownerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// UpdateListing handles applying changes to an owner's listing
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.uc.UpdateListing(c.Request().Context(), ownerID, id, input)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Listing not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated successfully")
}

// DeleteListing handles removing an owner's listing
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	ownerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	if err := h.uc.DeleteListing(c.Request().Context(), ownerID, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Listing not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}

// SaveListing handles bookmarking a listing
func (h *ListingHandler) SaveListing(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	if err := h.uc.SaveListing(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrListingAlreadySaved) {
			return response.Conflict(c, "LISTING_ALREADY_SAVED", "Listing is already saved")
		}
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Listing not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Listing saved successfully")
}

// UnsaveListing handles removing a bookmark
func (h *ListingHandler) UnsaveListing(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	if err := h.uc.UnsaveListing(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Saved listing not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing unsaved successfully")
}

// GetSavedListings handles retrieving the authenticated user's bookmarks
func (h *ListingHandler) GetSavedListings(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	listings, err := h.uc.GetSavedListings(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ShareListingQR handles rendering a share QR code for a listing
func (h *ListingHandler) ShareListingQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return response.NotFound(c, "LISTING_NOT_FOUND", "Listing not found")
		}

		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleAppError handles application errors
func (h *ListingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// userIDFromContext extracts the authenticated user's ID set by the auth middleware
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// parseQueryInt parses an integer query parameter with a fallback default
func parseQueryInt(c echo.Context, name string, def int) int {
	if raw := c.QueryParam(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			return parsed
		}
	}

	return def
}
