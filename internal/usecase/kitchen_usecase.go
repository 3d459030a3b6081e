package usecase

import (
	"context"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/projection"
)

// KitchenUsecase serves the live kitchen board. The implementation holds
// the latest order snapshot delivered by the watcher; Board projects it for
// a role on demand, so a burst of snapshots costs one projection per read,
// not one per tick.
type KitchenUsecase interface {
	// Board returns the current kitchen board as the given role sees it.
	Board(role entity.Role) []projection.Ticket

	// Subscribe registers for board-change signals until ctx is done. The
	// returned channel coalesces bursts: a slow reader sees the latest
	// state, never a backlog.
	Subscribe(ctx context.Context) <-chan struct{}

	// Advance moves an order forward in its lifecycle
	// (pending -> preparing -> en_route -> completed; en_route is delivery
	// only). Backward moves are rejected.
	Advance(ctx context.Context, orderID string, next entity.OrderStatus) error
}

// TableStatus is the live table-occupancy view for the dine-in picker.
type TableStatus struct {
	TableCount int   `json:"table_count"`
	Busy       []int `json:"busy"`
	Suggested  int   `json:"suggested"` // 0 when every table is claimed.
}

// TableUsecase serves the table-occupancy view from its own watcher
// subscription, independent of the kitchen board.
type TableUsecase interface {
	Status(ctx context.Context) (*TableStatus, error)
}
