package impl

import (
	"context"
	"log/slog"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Wallet callback results as the payment provider redirects them.
const (
	CallbackApproved = "approved"
	CallbackPending  = "pending"
	CallbackFailure  = "failure"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	checkout  usecase.CheckoutUsecase
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Checkout  usecase.CheckoutUsecase
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		checkout:  params.Checkout,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// CreateWalletPreference syncs the wallet draft and registers it with the
// payment provider. Reopening the widget after a cart change lands on the
// same draft document and a fresh preference.
func (srv *paymentService) CreateWalletPreference(ctx context.Context, user *entity.UserProfile, draftID string, input *usecase.CheckoutInput) (*usecase.WalletCheckout, error) {
	order, err := srv.checkout.UpsertDraft(ctx, user, draftID, input)
	if err != nil {
		return nil, err
	}

	preference, err := srv.gateway.CreatePreference(ctx, order)
	if err != nil {
		srv.logger.Error("Failed to create wallet preference", "orderID", order.ID, "error", err)

		return nil, domainerrors.ErrPaymentPreferenceFailed
	}

	srv.logger.Info("Wallet preference created", "orderID", order.ID, "preferenceID", preference.ID)

	return &usecase.WalletCheckout{
		Order:      order,
		Preference: preference,
	}, nil
}

// HandleCallback resolves a provider redirect for the referenced order. An
// approved result confirms the draft; a failure cancels it; a pending
// result leaves it untouched for a later redirect. Callbacks for orders
// that already left pending_payment are ignored: redirects can arrive
// twice.
func (srv *paymentService) HandleCallback(ctx context.Context, orderID string, result string) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if order.Status != entity.StatusPendingPayment {
		srv.logger.Info("Ignoring callback for settled order", "orderID", orderID, "status", order.Status)

		return nil
	}

	var next entity.OrderStatus
	switch result {
	case CallbackApproved:
		next = entity.StatusPending
	case CallbackFailure:
		next = entity.StatusCancelled
	case CallbackPending:
		return nil
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown callback result")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return errors.Wrap(err, "failed to settle order")
	}

	srv.logger.Info("Wallet payment settled", "orderID", orderID, "result", result, "status", next)

	order.Status = next
	event := &service.OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Type:    order.Type,
		Total:   order.Total,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order event", "orderID", order.ID, "error", err)
	}

	return nil
}
