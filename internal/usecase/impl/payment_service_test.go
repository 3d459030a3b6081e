package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// paymentFixtures holds all test dependencies for payment service tests.
type paymentFixtures struct {
	service   usecase.PaymentUsecase
	checkout  checkoutFixtures
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentFixtures {
	checkout := createTestCheckoutService(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPaymentService(PaymentServiceParams{
		Checkout:  checkout.service,
		OrderRepo: checkout.orderRepo,
		Gateway:   gateway,
		Publisher: checkout.publisher,
		Logger:    logger,
	})

	return paymentFixtures{
		service:   service,
		checkout:  checkout,
		orderRepo: checkout.orderRepo,
		gateway:   gateway,
		publisher: checkout.publisher,
	}
}

func walletInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(200),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentWallet,
	}
}

func TestCreateWalletPreference_SyncsDraftThenRegisters(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.checkout.storeRepo.On("Get", ctx).Return(openStore(), nil)
	fx.orderRepo.On("Upsert", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID == "draft-1" && o.Status == entity.StatusPendingPayment
	})).Return(nil)
	fx.gateway.On("CreatePreference", ctx, mock.AnythingOfType("*entity.Order")).
		Return(&service.WalletPreference{ID: "pref-1", InitPoint: "https://wallet.example/init"}, nil)

	checkout, err := fx.service.CreateWalletPreference(ctx, testCustomer(), "draft-1", walletInput())
	require.NoError(t, err)

	assert.Equal(t, "draft-1", checkout.Order.ID)
	assert.Equal(t, "pref-1", checkout.Preference.ID)
}

func TestCreateWalletPreference_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.checkout.storeRepo.On("Get", ctx).Return(openStore(), nil)
	fx.orderRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.gateway.On("CreatePreference", ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil, assert.AnError)

	_, err := fx.service.CreateWalletPreference(ctx, testCustomer(), "draft-1", walletInput())
	assert.ErrorIs(t, err, domainerrors.ErrPaymentPreferenceFailed)
}

func TestHandleCallback_ApprovedConfirmsDraft(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	draft := &entity.Order{ID: "draft-1", UserID: "u1", Status: entity.StatusPendingPayment}
	fx.orderRepo.On("FindByID", ctx, "draft-1").Return(draft, nil)
	fx.orderRepo.On("UpdateStatus", ctx, "draft-1", entity.StatusPending).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.OrderID == "draft-1" && e.Status == entity.StatusPending
	})).Return(nil)

	err := fx.service.HandleCallback(ctx, "draft-1", CallbackApproved)
	assert.NoError(t, err)
}

func TestHandleCallback_FailureCancelsDraft(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	draft := &entity.Order{ID: "draft-1", Status: entity.StatusPendingPayment}
	fx.orderRepo.On("FindByID", ctx, "draft-1").Return(draft, nil)
	fx.orderRepo.On("UpdateStatus", ctx, "draft-1", entity.StatusCancelled).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	err := fx.service.HandleCallback(ctx, "draft-1", CallbackFailure)
	assert.NoError(t, err)
}

func TestHandleCallback_PendingLeavesDraftAlone(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	draft := &entity.Order{ID: "draft-1", Status: entity.StatusPendingPayment}
	fx.orderRepo.On("FindByID", ctx, "draft-1").Return(draft, nil)

	err := fx.service.HandleCallback(ctx, "draft-1", CallbackPending)
	require.NoError(t, err)
	fx.orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestHandleCallback_IgnoresSettledOrders(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	// The redirect arrived twice; the first one already confirmed it.
	confirmed := &entity.Order{ID: "draft-1", Status: entity.StatusPending}
	fx.orderRepo.On("FindByID", ctx, "draft-1").Return(confirmed, nil)

	err := fx.service.HandleCallback(ctx, "draft-1", CallbackApproved)
	require.NoError(t, err)
	fx.orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestHandleCallback_UnknownResult(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	draft := &entity.Order{ID: "draft-1", Status: entity.StatusPendingPayment}
	fx.orderRepo.On("FindByID", ctx, "draft-1").Return(draft, nil)

	err := fx.service.HandleCallback(ctx, "draft-1", "weird")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
