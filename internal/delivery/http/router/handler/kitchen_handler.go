package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"fogon/internal/delivery/http/middleware"
	"fogon/internal/delivery/http/response"
	"fogon/internal/domain/entity"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// KitchenHandlerParams holds dependencies for KitchenHandler, injected by Fx.
type KitchenHandlerParams struct {
	fx.In

	KitchenUC usecase.KitchenUsecase
	Logger    *slog.Logger
}

// KitchenHandler holds dependencies for the kitchen display handlers.
type KitchenHandler struct {
	kitchenUC usecase.KitchenUsecase
	logger    *slog.Logger
}

// NewKitchenHandler is the constructor for KitchenHandler.
func NewKitchenHandler(params KitchenHandlerParams) *KitchenHandler {
	return &KitchenHandler{
		kitchenUC: params.KitchenUC,
		logger:    params.Logger,
	}
}

// Board returns the current kitchen board as the caller's role sees it.
func (h *KitchenHandler) Board(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.kitchenUC.Board(middleware.GetRole(c)), "")
}

// Stream pushes board updates over server-sent events. Each signal from
// the live view re-renders the board for the caller's role; a slow client
// skips intermediate states instead of queueing them.
func (h *KitchenHandler) Stream(c echo.Context) error {
	role := middleware.GetRole(c)
	ctx := c.Request().Context()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	signals := h.kitchenUC.Subscribe(ctx)

	send := func() error {
		payload, err := json.Marshal(h.kitchenUC.Board(role))
		if err != nil {
			return errors.Wrap(err, "failed to encode kitchen board")
		}
		if _, err := fmt.Fprintf(res, "event: board\ndata: %s\n\n", payload); err != nil {
			return errors.Wrap(err, "failed to write board event")
		}
		res.Flush()

		return nil
	}

	if err := send(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-signals:
			if err := send(); err != nil {
				return err
			}
		}
	}
}

// AdvanceRequest represents the request body for advancing an order.
type AdvanceRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// Advance moves an order forward in its lifecycle.
func (h *KitchenHandler) Advance(c echo.Context) error {
	var req AdvanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.kitchenUC.Advance(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pedido actualizado")
}
