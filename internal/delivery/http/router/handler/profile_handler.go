package handler

import (
	"log/slog"
	"net/http"

	"fogon/internal/delivery/http/middleware"
	"fogon/internal/delivery/http/response"
	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Me returns the caller's profile, already provisioned by the auth
// middleware on first sign-in.
func (h *ProfileHandler) Me(c echo.Context) error {
	profile := middleware.GetProfile(c)
	if profile == nil {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateDisplayRequest represents the request body for display data.
type UpdateDisplayRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	PhotoURL    string `json:"photo_url"`
}

// UpdateDisplay updates the caller's display name and photo.
func (h *ProfileHandler) UpdateDisplay(c echo.Context) error {
	var req UpdateDisplayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid display input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.profileUC.UpdateDisplay(c.Request().Context(), middleware.GetUserID(c), req.DisplayName, req.PhotoURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Perfil actualizado")
}

// AddAddress saves a delivery destination on the caller's profile.
func (h *ProfileHandler) AddAddress(c echo.Context) error {
	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.profileUC.AddAddress(c.Request().Context(), middleware.GetUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Dirección guardada")
}

// RemoveAddress removes a saved address from the caller's profile.
func (h *ProfileHandler) RemoveAddress(c echo.Context) error {
	var address entity.SavedAddress
	if err := c.Bind(&address); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := h.profileUC.RemoveAddress(c.Request().Context(), middleware.GetUserID(c), address); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dirección eliminada")
}

// AddCard saves a display-only card record on the caller's profile.
func (h *ProfileHandler) AddCard(c echo.Context) error {
	var input usecase.CardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.profileUC.AddCard(c.Request().Context(), middleware.GetUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, card, "Tarjeta guardada")
}

// RemoveCard removes a saved card from the caller's profile.
func (h *ProfileHandler) RemoveCard(c echo.Context) error {
	var card entity.SavedCard
	if err := c.Bind(&card); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}

	if err := h.profileUC.RemoveCard(c.Request().Context(), middleware.GetUserID(c), card); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tarjeta eliminada")
}
