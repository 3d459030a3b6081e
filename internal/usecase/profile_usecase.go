package usecase

import (
	"context"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/service"
)

// AddressInput defines a delivery destination to save on the profile.
type AddressInput struct {
	Alias     string  `json:"alias" validate:"required"`
	Text      string  `json:"text" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CardInput carries the raw card data entered on the profile screen. Only
// the brand, the holder and the last four digits survive; the full number
// is discarded before anything is persisted.
type CardInput struct {
	Alias  string `json:"alias"`
	Holder string `json:"holder" validate:"required"`
	Number string `json:"number" validate:"required,min=12"`
}

// ProfileUsecase manages the per-account profile document: first-session
// provisioning, display data and the saved address and card lists.
type ProfileUsecase interface {
	// EnsureProfile returns the profile for a verified identity, creating
	// it on first sign-in. New profiles default to the customer role unless
	// the email is on the admin allowlist.
	EnsureProfile(ctx context.Context, identity *service.Identity) (*entity.UserProfile, error)

	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)
	UpdateDisplay(ctx context.Context, uid, displayName, photoURL string) error

	AddAddress(ctx context.Context, uid string, input *AddressInput) (*entity.SavedAddress, error)
	RemoveAddress(ctx context.Context, uid string, address entity.SavedAddress) error

	AddCard(ctx context.Context, uid string, input *CardInput) (*entity.SavedCard, error)
	RemoveCard(ctx context.Context, uid string, card entity.SavedCard) error
}
