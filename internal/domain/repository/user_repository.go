// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fogon/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a user
// profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// UserRepository defines the standard operations for profile persistence.
// List-field mutations use the store's atomic array primitives so two
// sessions editing different entries never clobber the whole document.
type UserRepository interface {
	// FindByUID retrieves a profile by the identity provider's uid.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create persists a new profile document keyed by uid.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateDisplay updates display name and photo URL.
	UpdateDisplay(ctx context.Context, uid, displayName, photoURL string) error

	// AddAddress appends one saved address via array union.
	AddAddress(ctx context.Context, uid string, address entity.SavedAddress) error

	// RemoveAddress removes one saved address via array remove.
	RemoveAddress(ctx context.Context, uid string, address entity.SavedAddress) error

	// AddCard appends one saved card via array union.
	AddCard(ctx context.Context, uid string, card entity.SavedCard) error

	// RemoveCard removes one saved card via array remove.
	RemoveCard(ctx context.Context, uid string, card entity.SavedCard) error
}
