package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fogon/internal/delivery/http/response"
	"fogon/internal/domain/entity"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	TableUC usecase.TableUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for storefront configuration handlers.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	tableUC usecase.TableUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler.
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		tableUC: params.TableUC,
		logger:  params.Logger,
	}
}

// Get returns the live store configuration. The storefront reads the open
// flag and the transfer accounts from here.
func (h *StoreHandler) Get(c echo.Context) error {
	cfg, err := h.storeUC.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg, "")
}

// Tables returns the live table-occupancy view for the dine-in picker.
func (h *StoreHandler) Tables(c echo.Context) error {
	status, err := h.tableUC.Status(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// SetOpenRequest represents the request body for the open flag.
type SetOpenRequest struct {
	Open bool `json:"open"`
}

// SetOpen flips the storefront open flag. Admin only.
func (h *StoreHandler) SetOpen(c echo.Context) error {
	var req SetOpenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.storeUC.SetOpen(c.Request().Context(), req.Open); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tienda actualizada")
}

// SetTableCountRequest represents the request body for the table count.
type SetTableCountRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// SetTableCount updates the dine-in table count. Admin only.
func (h *StoreHandler) SetTableCount(c echo.Context) error {
	var req SetTableCountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.storeUC.SetTableCount(c.Request().Context(), req.Count); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mesas actualizadas")
}

// AddAccount registers a transfer destination. Admin only.
func (h *StoreHandler) AddAccount(c echo.Context) error {
	var input usecase.TransferAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.storeUC.AddAccount(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Cuenta agregada")
}

// RemoveAccount removes a transfer destination. Admin only. The whole
// account value is required, array removal matches entire elements.
func (h *StoreHandler) RemoveAccount(c echo.Context) error {
	var account entity.TransferAccount
	if err := c.Bind(&account); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := h.storeUC.RemoveAccount(c.Request().Context(), account); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta eliminada")
}

// TableQR renders the printable QR code for one table. Admin only.
func (h *StoreHandler) TableQR(c echo.Context) error {
	table, err := strconv.Atoi(c.Param("table"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid table number")
	}

	png, err := h.storeUC.TableQR(table)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=mesa-%d.png", table))

	return c.Blob(http.StatusOK, "image/png", png)
}
