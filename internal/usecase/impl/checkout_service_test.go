package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	mockRepo "fogon/internal/mocks/repository"
	mockSvc "fogon/internal/mocks/service"
	"fogon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutFixtures holds all test dependencies for checkout service tests.
type checkoutFixtures struct {
	service   usecase.CheckoutUsecase
	orderRepo *mockRepo.MockOrderRepository
	storeRepo *mockRepo.MockStoreRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCheckoutService(CheckoutServiceParams{
		OrderRepo: orderRepo,
		StoreRepo: storeRepo,
		Publisher: publisher,
		Config:    nil, // House default fee policy.
		Logger:    logger,
	})

	return checkoutFixtures{
		service:   service,
		orderRepo: orderRepo,
		storeRepo: storeRepo,
		publisher: publisher,
	}
}

func testCustomer() *entity.UserProfile {
	return &entity.UserProfile{
		UID:         "u1",
		Email:       "ana@example.com",
		Role:        entity.RoleCustomer,
		DisplayName: "Ana",
	}
}

func cartWithSubtotal(subtotal float64) entity.Cart {
	return entity.Cart{Items: []entity.CartItem{
		{ProductID: "p1", Name: "Producto", Category: "Alitas", BasePrice: subtotal, Quantity: 1},
	}}
}

func openStore() *entity.StoreConfig {
	return &entity.StoreConfig{IsOpen: true, TableCount: 10}
}

func TestQuote_ServiceFeeTiers(t *testing.T) {
	fx := createTestCheckoutService(t)

	tests := []struct {
		name     string
		subtotal float64
		fulfill  entity.FulfillmentType
		wantFee  float64
	}{
		{"dine-in below low tier", 299, entity.FulfillmentTable, 10},
		{"dine-in at low tier", 300, entity.FulfillmentTable, 25},
		{"dine-in between tiers", 499, entity.FulfillmentTable, 25},
		{"dine-in at high tier", 500, entity.FulfillmentTable, 30},
		{"dine-in above high tier", 800, entity.FulfillmentTable, 30},
		{"takeout is free", 500, entity.FulfillmentTakeout, 0},
		{"delivery flat fee", 500, entity.FulfillmentDelivery, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := fx.service.Quote(&usecase.CheckoutInput{
				Cart:          cartWithSubtotal(tt.subtotal),
				Type:          tt.fulfill,
				PaymentMethod: entity.PaymentCash,
			})

			assert.Equal(t, tt.wantFee, quote.ServiceFee)
			assert.Equal(t, tt.subtotal+tt.wantFee, quote.Total)
		})
	}
}

func TestQuote_WalletCommission(t *testing.T) {
	fx := createTestCheckoutService(t)

	quote := fx.service.Quote(&usecase.CheckoutInput{
		Cart:          cartWithSubtotal(200),
		Type:          entity.FulfillmentTable, // Subtotal 200 keeps the base fee of 10.
		PaymentMethod: entity.PaymentWallet,
	})

	// ceil((200 + 10) * 0.05 + 5) = 16.
	assert.Equal(t, 16.0, quote.Commission)
	assert.Equal(t, 226.0, quote.Total)
}

func TestQuote_NoCommissionForOtherMethods(t *testing.T) {
	fx := createTestCheckoutService(t)

	for _, method := range []entity.PaymentMethod{entity.PaymentCash, entity.PaymentTerminal, entity.PaymentTransfer} {
		quote := fx.service.Quote(&usecase.CheckoutInput{
			Cart:          cartWithSubtotal(200),
			Type:          entity.FulfillmentTakeout,
			PaymentMethod: method,
		})
		assert.Zero(t, quote.Commission, string(method))
	}
}

func TestSubmitOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(openStore(), nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.SubmitOrder(ctx, testCustomer(), &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(500),
		Type:          entity.FulfillmentTable,
		Detail:        "Mesa 4",
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 500.0, order.Subtotal)
	assert.Equal(t, 30.0, order.ServiceFee)
	assert.Equal(t, 530.0, order.Total)
}

func TestSubmitOrder_ValidationGates(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	fx.storeRepo.On("Get", ctx).Return(openStore(), nil).Maybe()

	tests := []struct {
		name    string
		input   *usecase.CheckoutInput
		wantErr error
	}{
		{
			"empty cart",
			&usecase.CheckoutInput{Type: entity.FulfillmentTakeout, PaymentMethod: entity.PaymentCash},
			domainerrors.ErrEmptyCart,
		},
		{
			"dine-in without table",
			&usecase.CheckoutInput{Cart: cartWithSubtotal(100), Type: entity.FulfillmentTable, PaymentMethod: entity.PaymentCash},
			domainerrors.ErrMissingTable,
		},
		{
			"delivery without address",
			&usecase.CheckoutInput{Cart: cartWithSubtotal(100), Type: entity.FulfillmentDelivery, PaymentMethod: entity.PaymentCash},
			domainerrors.ErrMissingAddress,
		},
		{
			"transfer without proof",
			&usecase.CheckoutInput{Cart: cartWithSubtotal(100), Type: entity.FulfillmentTakeout, PaymentMethod: entity.PaymentTransfer},
			domainerrors.ErrMissingProof,
		},
		{
			"transfer without destination account",
			&usecase.CheckoutInput{
				Cart: cartWithSubtotal(100), Type: entity.FulfillmentTakeout,
				PaymentMethod: entity.PaymentTransfer, ProofOfPayment: "https://example.com/recibo.png",
			},
			domainerrors.ErrMissingProof,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.SubmitOrder(ctx, testCustomer(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitOrder_RejectsWalletMethod(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.SubmitOrder(context.Background(), testCustomer(), &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(100),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentWallet,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubmitOrder_StoreClosed(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(&entity.StoreConfig{IsOpen: false}, nil)

	_, err := fx.service.SubmitOrder(ctx, testCustomer(), &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(100),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentCash,
	})

	assert.ErrorIs(t, err, domainerrors.ErrStoreClosed)
}

func TestSubmitOrder_AdminBypassesClosedStore(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	admin := testCustomer()
	admin.Role = entity.RoleAdmin

	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := fx.service.SubmitOrder(ctx, admin, &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(100),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentCash,
	})

	require.NoError(t, err)
	fx.storeRepo.AssertNotCalled(t, "Get")
}

func TestUpsertDraft_KeepsClientHeldID(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.storeRepo.On("Get", ctx).Return(openStore(), nil)
	fx.orderRepo.On("Upsert", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID == "draft-abc" && o.Status == entity.StatusPendingPayment
	})).Return(nil).Twice()

	input := &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(200),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentWallet,
	}

	first, err := fx.service.UpsertDraft(ctx, testCustomer(), "draft-abc", input)
	require.NoError(t, err)

	// Cart changed while the wallet widget was open: same document again.
	input.Cart.Add(entity.CartItem{ProductID: "p2", BasePrice: 50, Quantity: 1})
	second, err := fx.service.UpsertDraft(ctx, testCustomer(), "draft-abc", input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Greater(t, second.Total, first.Total)
}

func TestUpsertDraft_RequiresWalletMethod(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.UpsertDraft(context.Background(), testCustomer(), "draft-abc", &usecase.CheckoutInput{
		Cart:          cartWithSubtotal(100),
		Type:          entity.FulfillmentTakeout,
		PaymentMethod: entity.PaymentCash,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCancelOrder_CustomerRules(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	pending := &entity.Order{ID: "o1", UserID: "u1", Status: entity.StatusPending}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(pending, nil)
	fx.orderRepo.On("UpdateStatus", ctx, "o1", entity.StatusCancelled).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	err := fx.service.CancelOrder(ctx, "u1", entity.RoleCustomer, "o1")
	assert.NoError(t, err)
}

func TestCancelOrder_CustomerCannotCancelPreparing(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	preparing := &entity.Order{ID: "o1", UserID: "u1", Status: entity.StatusPreparing}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(preparing, nil)

	err := fx.service.CancelOrder(ctx, "u1", entity.RoleCustomer, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrCancelNotAllowed)
}

func TestCancelOrder_CustomerCannotCancelOthersOrders(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	other := &entity.Order{ID: "o1", UserID: "someone-else", Status: entity.StatusPending}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(other, nil)

	err := fx.service.CancelOrder(ctx, "u1", entity.RoleCustomer, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCancelOrder_AdminCancelsAnyPreTerminal(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	preparing := &entity.Order{ID: "o1", UserID: "someone-else", Status: entity.StatusPreparing}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(preparing, nil)
	fx.orderRepo.On("UpdateStatus", ctx, "o1", entity.StatusCancelled).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	err := fx.service.CancelOrder(ctx, "admin-uid", entity.RoleAdmin, "o1")
	assert.NoError(t, err)
}

func TestGetOrder_OwnerOnly(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	order := &entity.Order{ID: "o1", UserID: "u1", Status: entity.StatusPending}
	fx.orderRepo.On("FindByID", ctx, "o1").Return(order, nil)

	_, err := fx.service.GetOrder(ctx, "intruder", entity.RoleCustomer, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	got, err := fx.service.GetOrder(ctx, "u1", entity.RoleCustomer, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
}
