package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"draft to pending", StatusPendingPayment, StatusPending, true},
		{"pending to preparing", StatusPending, StatusPreparing, true},
		{"preparing to en_route", StatusPreparing, StatusEnRoute, true},
		{"en_route to completed", StatusEnRoute, StatusCompleted, true},
		{"skip ahead", StatusPending, StatusCompleted, true},
		{"backward", StatusPreparing, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancel is not a forward move", StatusPending, StatusCancelled, false},
		{"unknown target", StatusPending, OrderStatus("weird"), false},
		{"unknown source", OrderStatus("weird"), StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrder_Recompute(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Price: 95, Quantity: 2},
			{Price: 120, Quantity: 1},
		},
		ServiceFee: 25,
		Commission: 16,
	}

	order.Recompute()

	assert.Equal(t, 310.0, order.Subtotal)
	assert.Equal(t, 351.0, order.Total)
}

func TestOrder_RecomputeMaintainsTotalIdentity(t *testing.T) {
	order := &Order{
		Items:      []OrderItem{{Price: 50, Quantity: 3}},
		ServiceFee: 10,
	}
	order.Recompute()

	assert.Equal(t, order.Subtotal+order.ServiceFee+order.Commission, order.Total)

	// Mutating a component and recomputing keeps the identity.
	order.Commission = 13
	order.Recompute()
	assert.Equal(t, order.Subtotal+order.ServiceFee+order.Commission, order.Total)
}

func TestOrder_IsActive(t *testing.T) {
	assert.True(t, (&Order{Status: StatusPending}).IsActive())
	assert.True(t, (&Order{Status: StatusPreparing}).IsActive())
	assert.True(t, (&Order{Status: StatusEnRoute}).IsActive())
	assert.False(t, (&Order{Status: StatusPendingPayment}).IsActive())
	assert.False(t, (&Order{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Order{Status: StatusCancelled}).IsActive())
}

func TestOrder_CancelableBy(t *testing.T) {
	pending := &Order{Status: StatusPending}
	preparing := &Order{Status: StatusPreparing}
	completed := &Order{Status: StatusCompleted}
	draft := &Order{Status: StatusPendingPayment}

	// Customers may only abandon orders the kitchen has not taken.
	assert.True(t, pending.CancelableBy(RoleCustomer))
	assert.False(t, preparing.CancelableBy(RoleCustomer))
	assert.False(t, draft.CancelableBy(RoleCustomer))

	// Admins cancel anything not yet terminal.
	assert.True(t, pending.CancelableBy(RoleAdmin))
	assert.True(t, preparing.CancelableBy(RoleAdmin))
	assert.True(t, draft.CancelableBy(RoleAdmin))
	assert.False(t, completed.CancelableBy(RoleAdmin))
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{Price: 33.5, Quantity: 3}
	assert.Equal(t, 100.5, item.LineTotal())
}
