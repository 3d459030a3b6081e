// Package service defines the interfaces for external collaborators the
// application depends on: payments, media hosting, events, identity, QR
// codes and report rendering.
package service

import (
	"context"

	"fogon/internal/domain/entity"
)

// WalletPreference is the provider-side payment intent rendered by the
// embedded wallet widget.
type WalletPreference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PaymentGateway creates digital-wallet payment preferences. The external
// reference ties the preference back to the draft order document so the
// redirect callback can finalize the right order.
type PaymentGateway interface {
	// CreatePreference registers the order's line items with the provider
	// and returns the preference used to render the wallet widget.
	CreatePreference(ctx context.Context, order *entity.Order) (*WalletPreference, error)
}
