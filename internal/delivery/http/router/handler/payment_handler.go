package handler

import (
	"log/slog"
	"net/http"

	"fogon/internal/delivery/http/middleware"
	"fogon/internal/delivery/http/response"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for the wallet payment handlers.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// WalletPreferenceRequest carries the client-held draft id plus the current
// checkout input.
type WalletPreferenceRequest struct {
	DraftID  string                `json:"draft_id" validate:"required"`
	Checkout usecase.CheckoutInput `json:"checkout" validate:"required"`
}

// CreatePreference syncs the wallet draft and returns the provider
// preference for the widget.
func (h *PaymentHandler) CreatePreference(c echo.Context) error {
	profile := middleware.GetProfile(c)
	if profile == nil {
		return domainerrors.ErrUnauthorized
	}

	var req WalletPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	checkout, err := h.paymentUC.CreateWalletPreference(c.Request().Context(), profile, req.DraftID, &req.Checkout)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkout, "")
}

// Callback resolves a provider redirect. The provider passes the draft
// order id back as the external reference.
func (h *PaymentHandler) Callback(c echo.Context) error {
	orderID := c.QueryParam("external_reference")
	result := c.QueryParam("result")
	if orderID == "" || result == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing callback parameters")
	}

	if err := h.paymentUC.HandleCallback(c.Request().Context(), orderID, result); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pago procesado")
}
