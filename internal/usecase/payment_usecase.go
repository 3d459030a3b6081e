package usecase

import (
	"context"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/service"
)

// WalletCheckout pairs the synced draft order with the provider preference
// the storefront renders in the wallet widget.
type WalletCheckout struct {
	Order      *entity.Order             `json:"order"`
	Preference *service.WalletPreference `json:"preference"`
}

// PaymentUsecase drives the digital-wallet payment path: preference
// creation against the current draft, and the redirect callback that
// finalizes or abandons it.
type PaymentUsecase interface {
	// CreateWalletPreference syncs the wallet draft and registers it with
	// the payment provider.
	CreateWalletPreference(ctx context.Context, user *entity.UserProfile, draftID string, input *CheckoutInput) (*WalletCheckout, error)

	// HandleCallback resolves a provider redirect for the order referenced
	// by the preference's external reference. An approved result confirms
	// the draft; a failure cancels it; a pending result leaves it as is.
	HandleCallback(ctx context.Context, orderID string, result string) error
}
