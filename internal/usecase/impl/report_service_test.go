package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/service"
	mockRepo "fogon/internal/mocks/repository"
	mockSvc "fogon/internal/mocks/service"
	"fogon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportFixtures holds all test dependencies for report service tests.
type reportFixtures struct {
	service   usecase.ReportUsecase
	orderRepo *mockRepo.MockOrderRepository
	renderer  *mockSvc.MockReportRenderer
}

func createTestReportService(t *testing.T) reportFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	renderer := mockSvc.NewMockReportRenderer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReportService(ReportServiceParams{
		OrderRepo: orderRepo,
		Renderer:  renderer,
		Logger:    logger,
	})

	return reportFixtures{service: service, orderRepo: orderRepo, renderer: renderer}
}

func reportWindow() (time.Time, time.Time) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	return from, from.AddDate(0, 0, 7)
}

func TestFinancial_TotalsCompletedOrdersOnly(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	from, to := reportWindow()

	orders := []*entity.Order{
		{ID: "o1", Status: entity.StatusCompleted, Total: 530},
		{ID: "o2", Status: entity.StatusCancelled, Total: 120},
		{ID: "o3", Status: entity.StatusCompleted, Total: 226},
	}
	fx.orderRepo.On("ListBetween", ctx, from, to).Return(orders, nil)
	fx.renderer.On("Render", mock.MatchedBy(func(r *service.FinancialReport) bool {
		return r.Total == 756 && len(r.Orders) == 3
	})).Return([]byte("%PDF"), nil)

	document, err := fx.service.Financial(ctx, from, to)
	require.NoError(t, err)
	assert.NotEmpty(t, document)
}

func TestFinancial_ListFailureIsReportFailed(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	from, to := reportWindow()

	fx.orderRepo.On("ListBetween", ctx, from, to).Return(nil, assert.AnError)

	_, err := fx.service.Financial(ctx, from, to)
	assert.ErrorIs(t, err, domainerrors.ErrReportFailed)
}

func TestFinancial_RenderFailureIsReportFailed(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	from, to := reportWindow()

	fx.orderRepo.On("ListBetween", ctx, from, to).Return([]*entity.Order{}, nil)
	fx.renderer.On("Render", mock.AnythingOfType("*service.FinancialReport")).Return(nil, assert.AnError)

	_, err := fx.service.Financial(ctx, from, to)
	assert.ErrorIs(t, err, domainerrors.ErrReportFailed)
}

func TestFinancial_EmptyWindow(t *testing.T) {
	fx := createTestReportService(t)
	from, _ := reportWindow()

	_, err := fx.service.Financial(context.Background(), from, from)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
