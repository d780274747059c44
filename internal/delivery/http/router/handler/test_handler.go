package handler

import (
	"net/http"

	"homeradar/internal/delivery/http/response"
	"homeradar/internal/domain/entity"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler exposes development-only endpoints that trigger the fan-out
// synchronously, bypassing the pub/sub path.
type TestHandler struct {
	notificationSvc usecase.NotificationUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(notificationSvc usecase.NotificationUsecase) *TestHandler {
	return &TestHandler{
		notificationSvc: notificationSvc,
	}
}

// TestListingDispatchRequest mimics a listing-created trigger event
type TestListingDispatchRequest struct {
	ListingID uuid.UUID `json:"listing_id"`
	Title     string    `json:"title" validate:"required"`
	Rent      float64   `json:"rent" validate:"required,gt=0"`
	Latitude  float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64   `json:"longitude" validate:"min=-180,max=180"`
}

// TriggerListingDispatch runs the new-listing fan-out synchronously
func (h *TestHandler) TriggerListingDispatch(c echo.Context) error {
	var req TestListingDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.ListingID == uuid.Nil {
		req.ListingID = uuid.New()
	}

	result, err := h.notificationSvc.NotifyNearbySeekers(c.Request().Context(), &entity.ListingEvent{
		ListingID: req.ListingID,
		Title:     req.Title,
		Rent:      req.Rent,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.InternalServerError(c, "DISPATCH_QUERY_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, result, "Dispatch completed")
}

// TestSeekerDispatchRequest mimics a seeker-location trigger event
type TestSeekerDispatchRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64 `json:"radius_km" validate:"required,min=5,max=50"`
}

// TriggerSeekerDispatch runs the nearby-owner fan-out synchronously
func (h *TestHandler) TriggerSeekerDispatch(c echo.Context) error {
	var req TestSeekerDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationSvc.NotifyNearbyOwners(c.Request().Context(), req.Latitude, req.Longitude, req.RadiusKm)
	if err != nil {
		return response.InternalServerError(c, "DISPATCH_QUERY_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, result, "Dispatch completed")
}
