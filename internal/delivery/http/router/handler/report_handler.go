package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fogon/internal/delivery/http/response"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for the financial report handler.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// Financial renders the order history of a date window as a PDF download.
// Dates are inclusive calendar days in "2006-01-02" form; the window covers
// [from, to+1d).
func (h *ReportHandler) Financial(c echo.Context) error {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid from date")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid to date")
	}

	document, err := h.reportUC.Financial(c.Request().Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=reporte-financiero.pdf")

	return c.Blob(http.StatusOK, "application/pdf", document)
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
