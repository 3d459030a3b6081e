// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fogon/internal/domain/entity"
)

// StoreRepository manages the singleton storefront configuration document
// plus the legacy table-count singleton kept for older dashboards.
type StoreRepository interface {
	// Get reads the store configuration, lazily creating the default
	// document on first read.
	Get(ctx context.Context) (*entity.StoreConfig, error)

	// SetOpen flips the storefront open flag.
	SetOpen(ctx context.Context, open bool) error

	// SetTableCount updates the dine-in table count.
	SetTableCount(ctx context.Context, count int) error

	// AddAccount appends a transfer destination via array union.
	AddAccount(ctx context.Context, account entity.TransferAccount) error

	// RemoveAccount removes a transfer destination via array remove.
	RemoveAccount(ctx context.Context, account entity.TransferAccount) error

	// LegacyTableCount reads the table count from the alternate `config`
	// singleton used by the old dashboard. Implementations return an error
	// only when the read itself fails; callers fall back to a fixed count.
	LegacyTableCount(ctx context.Context) (int, error)
}
