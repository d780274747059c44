package handler

import (
	"log/slog"
	"net/http"

	"homeradar/internal/delivery/http/response"
	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/domain/service"
	"homeradar/internal/infra/push"
	"homeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for notification-settings handlers
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	relay  *push.RelayClient
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(uc usecase.SettingsUsecase, relay *push.RelayClient, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		relay:  relay,
		logger: logger,
	}
}

// DeviceStateRequest is the device snapshot the client reports alongside its
// settings. The server replays it through the token acquisition ladder.
type DeviceStateRequest struct {
	PhysicalDevice bool   `json:"physical_device"`
	Permission     string `json:"permission" validate:"omitempty,oneof=granted denied undetermined"`
	PromptResult   string `json:"prompt_result" validate:"omitempty,oneof=granted denied undetermined"`
}

// SaveSettingsRequest represents the request body for saving settings
type SaveSettingsRequest struct {
	Role      string             `json:"role" validate:"required,oneof=owner seeker"`
	Latitude  float64            `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64            `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64            `json:"radius_km"`
	Enabled   bool               `json:"enabled"`
	Device    DeviceStateRequest `json:"device"`
}

// SaveSettings handles validating and upserting a user's settings
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req SaveSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	platform := push.NewReportedDevice(push.DeviceState{
		PhysicalDevice: req.Device.PhysicalDevice,
		Permission:     service.PermissionStatus(req.Device.Permission),
		PromptResult:   service.PermissionStatus(req.Device.PromptResult),
	}, h.relay)

	recipient, err := h.uc.SaveSettings(c.Request().Context(), userID, usecase.SettingsInput{
		Role:      entity.Role(req.Role),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		Enabled:   req.Enabled,
	}, platform)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipient, "Settings saved successfully")
}

// GetSettings handles retrieving a user's settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	recipient, err := h.uc.GetSettings(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return response.NotFound(c, "SETTINGS_NOT_FOUND", "Notification settings not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipient, "")
}

// UpdateLocationRequest represents the request body for moving the anchor coordinate
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateLocation handles moving a user's anchor coordinate
func (h *SettingsHandler) UpdateLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateLocation(c.Request().Context(), userID, req.Latitude, req.Longitude); err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return response.NotFound(c, "SETTINGS_NOT_FOUND", "Notification settings not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

// DisableNotifications handles opting a user out
func (h *SettingsHandler) DisableNotifications(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.DisableNotifications(c.Request().Context(), userID); err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return response.NotFound(c, "SETTINGS_NOT_FOUND", "Notification settings not found")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications disabled")
}

// handleAppError handles application errors
func (h *SettingsHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
