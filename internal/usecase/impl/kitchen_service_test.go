package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	mockRepo "fogon/internal/mocks/repository"
	mockSvc "fogon/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// kitchenFixtures holds all test dependencies for kitchen service tests.
// The service is built directly so no watcher subscription is opened.
type kitchenFixtures struct {
	service   *kitchenService
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestKitchenService(t *testing.T) kitchenFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := &kitchenService{
		orderRepo:   orderRepo,
		publisher:   publisher,
		logger:      logger,
		subscribers: make(map[chan struct{}]struct{}),
	}

	return kitchenFixtures{service: service, orderRepo: orderRepo, publisher: publisher}
}

func TestKitchenAdvance_ForwardTransition(t *testing.T) {
	fx := createTestKitchenService(t)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", Status: entity.StatusPending, Type: entity.FulfillmentTable}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(order, nil)
	fx.orderRepo.On("UpdateStatus", ctx, "o1", entity.StatusPreparing).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	err := fx.service.Advance(ctx, "o1", entity.StatusPreparing)
	assert.NoError(t, err)
}

func TestKitchenAdvance_RejectsBackwardTransition(t *testing.T) {
	fx := createTestKitchenService(t)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", Status: entity.StatusEnRoute, Type: entity.FulfillmentDelivery}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(order, nil)

	err := fx.service.Advance(ctx, "o1", entity.StatusPreparing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestKitchenAdvance_EnRouteIsDeliveryOnly(t *testing.T) {
	fx := createTestKitchenService(t)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", Status: entity.StatusPreparing, Type: entity.FulfillmentTable}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(order, nil)

	err := fx.service.Advance(ctx, "o1", entity.StatusEnRoute)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestKitchenAdvance_RejectsUnpaidDraft(t *testing.T) {
	fx := createTestKitchenService(t)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", Status: entity.StatusPendingPayment, Type: entity.FulfillmentTakeout}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(order, nil)

	err := fx.service.Advance(ctx, "o1", entity.StatusPreparing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestKitchenBoard_ProjectsLatestSnapshot(t *testing.T) {
	fx := createTestKitchenService(t)

	fx.service.store([]*entity.Order{
		{ID: "o1", Status: entity.StatusPending, CreatedAt: time.Now(),
			Items: []entity.OrderItem{{Category: "Alitas", Name: "Alitas", Price: 120, Quantity: 1}}},
	})

	board := fx.service.Board(entity.RoleAdmin)
	require.Len(t, board, 1)
	assert.Equal(t, "o1", board[0].OrderID)

	// A later snapshot fully replaces the earlier one.
	fx.service.store(nil)
	assert.Empty(t, fx.service.Board(entity.RoleAdmin))
}

func TestKitchenSubscribe_CoalescesBursts(t *testing.T) {
	fx := createTestKitchenService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := fx.service.Subscribe(ctx)

	// Three rapid snapshots collapse into a single pending signal.
	fx.service.store(nil)
	fx.service.store(nil)
	fx.service.store(nil)

	select {
	case <-signals:
	case <-time.After(time.Second):
		t.Fatal("expected a board-change signal")
	}

	select {
	case <-signals:
		t.Fatal("burst should coalesce into one signal")
	default:
	}
}

// tableFixtures holds test dependencies for the occupancy view, built
// directly so no watcher subscription is opened.
type tableFixtures struct {
	service   *tableService
	storeRepo *mockRepo.MockStoreRepository
}

func createTestTableService(t *testing.T) tableFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := &tableService{
		storeRepo:     storeRepo,
		fallbackCount: 10,
		logger:        logger,
	}

	return tableFixtures{service: service, storeRepo: storeRepo}
}

func TestTableStatus_BusyAndSuggested(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(&entity.StoreConfig{IsOpen: true, TableCount: 6}, nil)
	fx.service.snapshot = []*entity.Order{
		{Type: entity.FulfillmentTable, Status: entity.StatusPending, Detail: "Mesa 1, 2"},
		{Type: entity.FulfillmentTable, Status: entity.StatusPreparing, Detail: "Mesa 3"},
	}

	status, err := fx.service.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, status.TableCount)
	assert.Equal(t, []int{1, 2, 3}, status.Busy)
	assert.Equal(t, 4, status.Suggested)
}

func TestTableStatus_FallsBackToLegacyCount(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(nil, assert.AnError)
	fx.storeRepo.On("LegacyTableCount", ctx).Return(8, nil)

	status, err := fx.service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, status.TableCount)
}

func TestTableStatus_FallsBackToConfiguredCount(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(nil, assert.AnError)
	fx.storeRepo.On("LegacyTableCount", ctx).Return(0, assert.AnError)

	status, err := fx.service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, status.TableCount)
}
