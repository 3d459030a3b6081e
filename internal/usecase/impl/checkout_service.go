package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"fogon/config"
	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feePolicy is the resolved order-level charge policy. Zero-valued config
// sections fall back to the house defaults.
type feePolicy struct {
	dineInBase        float64
	tierLowThreshold  float64
	tierLowAmount     float64
	tierHighThreshold float64
	tierHighAmount    float64
	deliveryFee       float64
	commissionPct     float64
	commissionFixed   float64
}

func resolveFeePolicy(cfg *config.Config) feePolicy {
	policy := feePolicy{
		dineInBase:        10,
		tierLowThreshold:  300,
		tierLowAmount:     15,
		tierHighThreshold: 500,
		tierHighAmount:    20,
		deliveryFee:       30,
		commissionPct:     0.05,
		commissionFixed:   5,
	}

	if cfg == nil || cfg.Pricing == nil {
		return policy
	}

	fee := cfg.Pricing.ServiceFee
	if fee.DineInBase > 0 {
		policy.dineInBase = fee.DineInBase
	}
	if fee.TierLowThreshold > 0 {
		policy.tierLowThreshold = fee.TierLowThreshold
	}
	if fee.TierLowAmount > 0 {
		policy.tierLowAmount = fee.TierLowAmount
	}
	if fee.TierHighThreshold > 0 {
		policy.tierHighThreshold = fee.TierHighThreshold
	}
	if fee.TierHighAmount > 0 {
		policy.tierHighAmount = fee.TierHighAmount
	}
	if fee.DeliveryFee > 0 {
		policy.deliveryFee = fee.DeliveryFee
	}

	commission := cfg.Pricing.WalletCommission
	if commission.Percent > 0 {
		policy.commissionPct = commission.Percent
	}
	if commission.Fixed > 0 {
		policy.commissionFixed = commission.Fixed
	}

	return policy
}

// serviceFee computes the order-level fee for a fulfillment type. Takeout
// carries no fee; dine-in adds an automatic gratuity tier on top of the
// base; delivery is a flat courier fee.
func (p feePolicy) serviceFee(fulfillment entity.FulfillmentType, subtotal float64) float64 {
	switch fulfillment {
	case entity.FulfillmentTable:
		fee := p.dineInBase
		switch {
		case subtotal >= p.tierHighThreshold:
			fee += p.tierHighAmount
		case subtotal >= p.tierLowThreshold:
			fee += p.tierLowAmount
		}

		return fee
	case entity.FulfillmentDelivery:
		return p.deliveryFee
	default:
		return 0
	}
}

// commission computes the wallet processing charge, rounded up to the next
// whole unit. Every other payment method carries none.
func (p feePolicy) commission(method entity.PaymentMethod, amount float64) float64 {
	if method != entity.PaymentWallet {
		return 0
	}

	return math.Ceil(amount*p.commissionPct + p.commissionFixed)
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
	publisher service.EventPublisher
	policy    feePolicy
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	StoreRepo repository.StoreRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		orderRepo: params.OrderRepo,
		storeRepo: params.StoreRepo,
		publisher: params.Publisher,
		policy:    resolveFeePolicy(params.Config),
		logger:    params.Logger,
	}
}

// Quote prices the checkout input without persisting anything.
func (srv *checkoutService) Quote(input *usecase.CheckoutInput) *usecase.CheckoutQuote {
	subtotal := input.Cart.Subtotal()
	fee := srv.policy.serviceFee(input.Type, subtotal)
	commission := srv.policy.commission(input.PaymentMethod, subtotal+fee)

	return &usecase.CheckoutQuote{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Commission: commission,
		Total:      subtotal + fee + commission,
	}
}

// SubmitOrder confirms a cash, terminal or transfer order. The order
// document is created exactly once, with status pending. Wallet orders
// never enter here: they travel the draft path and are confirmed by the
// payment callback.
func (srv *checkoutService) SubmitOrder(ctx context.Context, user *entity.UserProfile, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input.PaymentMethod == entity.PaymentWallet {
		return nil, domainerrors.ErrValidationFailed.WithDetails("digital-wallet orders are confirmed through the payment callback")
	}
	if err := srv.ensureOpen(ctx, user); err != nil {
		return nil, err
	}

	order, err := srv.buildOrder(user, input)
	if err != nil {
		return nil, err
	}
	order.ID = uuid.NewString()
	order.Status = entity.StatusPending

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("Order confirmed",
		"orderID", order.ID, "userID", order.UserID,
		"type", order.Type, "paymentMethod", order.PaymentMethod, "total", order.Total)
	srv.publish(ctx, order)

	return order, nil
}

// UpsertDraft creates or overwrites the wallet draft for the client-held
// draft id. Repeated calls while the wallet widget is open land on the same
// document, last write wins.
func (srv *checkoutService) UpsertDraft(ctx context.Context, user *entity.UserProfile, draftID string, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input.PaymentMethod != entity.PaymentWallet {
		return nil, domainerrors.ErrValidationFailed.WithDetails("only digital-wallet orders use the draft flow")
	}
	if strings.TrimSpace(draftID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing draft id")
	}
	if err := srv.ensureOpen(ctx, user); err != nil {
		return nil, err
	}

	order, err := srv.buildOrder(user, input)
	if err != nil {
		return nil, err
	}
	order.ID = draftID
	order.Status = entity.StatusPendingPayment

	if err := srv.orderRepo.Upsert(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to upsert draft order")
	}

	return order, nil
}

// ListUserOrders returns the caller's order history, newest first.
func (srv *checkoutService) ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// GetOrder returns a single order, restricted to its owner unless the
// caller is privileged.
func (srv *checkoutService) GetOrder(ctx context.Context, userID string, role entity.Role, orderID string) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID && !role.IsPrivileged() {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// CancelOrder cancels the order when the caller's role allows it in the
// order's current state. Customers may only abandon their own orders the
// kitchen has not taken yet.
func (srv *checkoutService) CancelOrder(ctx context.Context, userID string, role entity.Role, orderID string) error {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if role != entity.RoleAdmin && order.UserID != userID {
		return domainerrors.ErrForbidden
	}
	if !order.CancelableBy(role) {
		return domainerrors.ErrCancelNotAllowed
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, entity.StatusCancelled); err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}

	srv.logger.Info("Order cancelled", "orderID", orderID, "by", role)
	order.Status = entity.StatusCancelled
	srv.publish(ctx, order)

	return nil
}

// buildOrder validates the checkout input and assembles an order with its
// charge breakdown. Status and id are left for the caller to set.
func (srv *checkoutService) buildOrder(user *entity.UserProfile, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input.Cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if !input.Type.IsValid() || !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown fulfillment type or payment method")
	}

	detail := strings.TrimSpace(input.Detail)
	switch input.Type {
	case entity.FulfillmentTable:
		if detail == "" {
			return nil, domainerrors.ErrMissingTable
		}
	case entity.FulfillmentDelivery:
		if detail == "" {
			return nil, domainerrors.ErrMissingAddress
		}
	}

	if input.PaymentMethod == entity.PaymentTransfer {
		if strings.TrimSpace(input.ProofOfPayment) == "" || strings.TrimSpace(input.TransferTo) == "" {
			return nil, domainerrors.ErrMissingProof
		}
	}

	now := time.Now()
	order := &entity.Order{
		UserID:         user.UID,
		UserName:       user.DisplayName,
		Items:          input.Cart.OrderItems(),
		Type:           input.Type,
		Detail:         detail,
		PaymentMethod:  input.PaymentMethod,
		ProofOfPayment: strings.TrimSpace(input.ProofOfPayment),
		TransferTo:     strings.TrimSpace(input.TransferTo),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	subtotal := input.Cart.Subtotal()
	order.ServiceFee = srv.policy.serviceFee(input.Type, subtotal)
	order.Commission = srv.policy.commission(input.PaymentMethod, subtotal+order.ServiceFee)
	order.Recompute()

	return order, nil
}

// ensureOpen blocks order entry while the storefront is closed. Admins
// bypass the gate so the dashboard keeps working after hours.
func (srv *checkoutService) ensureOpen(ctx context.Context, user *entity.UserProfile) error {
	if user.Role == entity.RoleAdmin {
		return nil
	}

	cfg, err := srv.storeRepo.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read store configuration")
	}
	if !cfg.IsOpen {
		return domainerrors.ErrStoreClosed
	}

	return nil
}

func (srv *checkoutService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// publish emits an order lifecycle event. Failures are logged, never
// surfaced: the order write already happened.
func (srv *checkoutService) publish(ctx context.Context, order *entity.Order) {
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
}
