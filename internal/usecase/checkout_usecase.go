package usecase

import (
	"context"

	"fogon/internal/domain/entity"
)

// CheckoutInput is the confirmed cart plus the fulfillment and payment
// choices made on the checkout screen.
type CheckoutInput struct {
	Cart          entity.Cart            `json:"cart" validate:"required"`
	Type          entity.FulfillmentType `json:"type" validate:"required"`
	Detail        string                 `json:"detail"`
	PaymentMethod entity.PaymentMethod   `json:"payment_method" validate:"required"`

	// Transfer-only fields: the uploaded receipt URL and the destination
	// account chosen from the store configuration.
	ProofOfPayment string `json:"proof_of_payment"`
	TransferTo     string `json:"transfer_to"`
}

// CheckoutQuote is the order-level charge breakdown shown before
// confirmation. Total = Subtotal + ServiceFee + Commission, always.
type CheckoutQuote struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Commission float64 `json:"commission"`
	Total      float64 `json:"total"`
}

// CheckoutUsecase builds, confirms and cancels orders. The digital-wallet
// path keeps a single draft document in sync while the wallet widget is
// open; every other payment path creates the order exactly once at
// confirmation.
type CheckoutUsecase interface {
	// Quote prices the input without persisting anything.
	Quote(input *CheckoutInput) *CheckoutQuote

	// SubmitOrder confirms a cash, terminal or transfer order, creating it
	// once with status pending.
	SubmitOrder(ctx context.Context, user *entity.UserProfile, input *CheckoutInput) (*entity.Order, error)

	// UpsertDraft creates or overwrites the wallet draft identified by the
	// client-held draft id, with status pending_payment.
	UpsertDraft(ctx context.Context, user *entity.UserProfile, draftID string, input *CheckoutInput) (*entity.Order, error)

	// ListUserOrders returns the caller's order history, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// GetOrder returns a single order, restricted to its owner unless the
	// caller is privileged.
	GetOrder(ctx context.Context, userID string, role entity.Role, orderID string) (*entity.Order, error)

	// CancelOrder cancels the order when the caller's role allows it in the
	// order's current state.
	CancelOrder(ctx context.Context, userID string, role entity.Role, orderID string) error
}
