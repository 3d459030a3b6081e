package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	orderRepo repository.OrderRepository
	renderer  service.ReportRenderer
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Renderer  service.ReportRenderer
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orderRepo: params.OrderRepo,
		renderer:  params.Renderer,
		logger:    params.Logger,
	}
}

// Financial renders the order history of [from, to) as a PDF. Generation
// is best effort: any failure is logged and reported as a single
// user-facing error, the dashboard stays up.
func (srv *reportService) Financial(ctx context.Context, from, to time.Time) ([]byte, error) {
	if !to.After(from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the report window is empty")
	}

	orders, err := srv.orderRepo.ListBetween(ctx, from, to)
	if err != nil {
		srv.logger.Error("Failed to load orders for report", "error", err)

		return nil, domainerrors.ErrReportFailed
	}

	var total float64
	for _, order := range orders {
		if order.Status == entity.StatusCompleted {
			total += order.Total
		}
	}

	document, err := srv.renderer.Render(&service.FinancialReport{
		From:   from,
		To:     to,
		Orders: orders,
		Total:  total,
	})
	if err != nil {
		srv.logger.Error("Failed to render report", "error", err)

		return nil, domainerrors.ErrReportFailed
	}

	return document, nil
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	uploader service.MediaUploader
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Uploader service.MediaUploader
	Logger   *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		uploader: params.Uploader,
		logger:   params.Logger,
	}
}

// UploadImage pushes an image to the media host and returns its public URL.
func (srv *mediaService) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	url, err := srv.uploader.Upload(ctx, filename, content)
	if err != nil {
		srv.logger.Error("Image upload failed", "filename", filename, "error", err)

		return "", domainerrors.ErrUploadFailed
	}

	srv.logger.Info("Image uploaded", "filename", filename)

	return url, nil
}
