// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"fogon/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not
// found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Writes are blind last-write-wins document operations; the store provides
// no document locking and none is simulated here.
type OrderRepository interface {
	// FindByID retrieves a single order by its document id.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListBetween retrieves orders created in [from, to), oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error)

	// Create persists a new order exactly once.
	Create(ctx context.Context, order *entity.Order) error

	// Upsert creates or blindly overwrites the draft document with the
	// given id. Repeated recomputation while a wallet payment UI is open
	// updates the same record instead of creating duplicates.
	Upsert(ctx context.Context, order *entity.Order) error

	// UpdateStatus mutates only the status field of the order document.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}

// OrderWatcher delivers live order snapshots. Each call opens an
// independent subscription: consumers must treat snapshots from different
// watchers as independently-arriving and never assume cross-ordering.
type OrderWatcher interface {
	// WatchAll streams snapshots of the whole order collection, in the
	// store's commit order, until ctx is done. The kitchen board filters
	// locally.
	WatchAll(ctx context.Context) (<-chan []*entity.Order, error)

	// WatchActiveDineIn streams snapshots of active dine-in orders for the
	// table-occupancy view.
	WatchActiveDineIn(ctx context.Context) (<-chan []*entity.Order, error)
}
