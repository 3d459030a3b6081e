// Package projection holds the pure read-side projections behind the live
// views: the kitchen board and the table-occupancy set. Each view owns its
// own subscription; these functions fold one delivered snapshot into the
// rendered shape and are testable without a live connection.
package projection

import (
	"sort"
	"time"

	"fogon/internal/domain/entity"
)

// Ticket is one kitchen-board entry: the lines the viewing role may see,
// plus order metadata for privileged roles only.
type Ticket struct {
	OrderID   string                 `json:"order_id"`
	Status    entity.OrderStatus     `json:"status"`
	Type      entity.FulfillmentType `json:"type"`
	CreatedAt time.Time              `json:"created_at"`
	Items     []entity.OrderItem     `json:"items"`
	Meta      *TicketMeta            `json:"meta,omitempty"`
}

// TicketMeta is the order metadata hidden from station roles.
type TicketMeta struct {
	UserName      string               `json:"user_name"`
	Detail        string               `json:"detail"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	Total         float64              `json:"total"`
}

// KitchenBoard projects an order snapshot into the board for the viewing
// role: unconfirmed drafts and terminal orders are dropped, the rest are
// sorted oldest first, and line items are filtered to the viewer's
// visibility. A station-role order with no visible items is hidden
// entirely; an unknown role sees nothing.
func KitchenBoard(orders []*entity.Order, viewer entity.Role) []Ticket {
	if !viewer.IsStaff() {
		return nil
	}

	active := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status.IsTerminal() || order.Status == entity.StatusPendingPayment {
			continue
		}
		active = append(active, order)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	board := make([]Ticket, 0, len(active))
	for _, order := range active {
		items := visibleItems(order.Items, viewer)
		if len(items) == 0 {
			continue
		}

		ticket := Ticket{
			OrderID:   order.ID,
			Status:    order.Status,
			Type:      order.Type,
			CreatedAt: order.CreatedAt,
			Items:     items,
		}
		if viewer.CanSeeOrderMetadata() {
			ticket.Meta = &TicketMeta{
				UserName:      order.UserName,
				Detail:        order.Detail,
				PaymentMethod: order.PaymentMethod,
				Total:         order.Total,
			}
		}
		board = append(board, ticket)
	}

	return board
}

func visibleItems(items []entity.OrderItem, viewer entity.Role) []entity.OrderItem {
	if viewer.IsPrivileged() {
		return items
	}

	visible := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		if viewer.CanSeeCategory(item.Category) {
			visible = append(visible, item)
		}
	}

	return visible
}
