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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	MediaUC    usecase.MediaUsecase
	Logger     *slog.Logger
}

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	mediaUC    usecase.MediaUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		checkoutUC: params.CheckoutUC,
		mediaUC:    params.MediaUC,
		logger:     params.Logger,
	}
}

// Quote prices the checkout input without persisting anything.
func (h *OrderHandler) Quote(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	return response.Success(c, http.StatusOK, h.checkoutUC.Quote(&input), "")
}

// Submit confirms a cash, terminal or transfer order.
func (h *OrderHandler) Submit(c echo.Context) error {
	profile := middleware.GetProfile(c)
	if profile == nil {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.checkoutUC.SubmitOrder(c.Request().Context(), profile, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Pedido confirmado")
}

// ListMine returns the caller's order history.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.checkoutUC.ListUserOrders(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one order, restricted to its owner unless the caller is
// privileged.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.checkoutUC.GetOrder(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		c.Param("id"),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UploadProof pushes a transfer receipt image to the media host and
// returns the URL the checkout input carries as proof of payment.
func (h *OrderHandler) UploadProof(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Falta la imagen del comprobante")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	url, err := h.mediaUC.UploadImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Comprobante recibido")
}

// Cancel cancels an order when the caller's role allows it.
func (h *OrderHandler) Cancel(c echo.Context) error {
	err := h.checkoutUC.CancelOrder(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		c.Param("id"),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pedido cancelado")
}
