package projection

import (
	"testing"
	"time"

	"fogon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFixture() []*entity.Order {
	base := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	return []*entity.Order{
		{
			ID:        "o-late",
			Status:    entity.StatusPending,
			Type:      entity.FulfillmentTable,
			UserName:  "Ana",
			Detail:    "Mesa 3",
			CreatedAt: base.Add(10 * time.Minute),
			Items: []entity.OrderItem{
				{ProductID: "p1", Name: "Hamburguesa", Category: "Hamburguesas", Price: 95, Quantity: 1},
				{ProductID: "p2", Name: "Refresco", Category: "Bebidas", Price: 25, Quantity: 2},
			},
		},
		{
			ID:        "o-early",
			Status:    entity.StatusPreparing,
			Type:      entity.FulfillmentDelivery,
			UserName:  "Luis",
			Detail:    "Av. Siempre Viva 742",
			CreatedAt: base,
			Items: []entity.OrderItem{
				{ProductID: "p3", Name: "Alitas", Category: "Alitas", Price: 120, Quantity: 1},
			},
		},
		{
			ID:        "o-done",
			Status:    entity.StatusCompleted,
			Type:      entity.FulfillmentTakeout,
			CreatedAt: base.Add(-time.Hour),
			Items: []entity.OrderItem{
				{ProductID: "p1", Name: "Hamburguesa", Category: "Hamburguesas", Price: 95, Quantity: 1},
			},
		},
		{
			ID:        "o-draft",
			Status:    entity.StatusPendingPayment,
			Type:      entity.FulfillmentTakeout,
			CreatedAt: base.Add(5 * time.Minute),
			Items: []entity.OrderItem{
				{ProductID: "p3", Name: "Alitas", Category: "Alitas", Price: 120, Quantity: 1},
			},
		},
	}
}

func TestKitchenBoard_DropsTerminalAndDraftOrders(t *testing.T) {
	board := KitchenBoard(boardFixture(), entity.RoleAdmin)

	require.Len(t, board, 2)
	for _, ticket := range board {
		assert.NotEqual(t, "o-done", ticket.OrderID)
		assert.NotEqual(t, "o-draft", ticket.OrderID)
	}
}

func TestKitchenBoard_SortsOldestFirst(t *testing.T) {
	board := KitchenBoard(boardFixture(), entity.RoleWaiter)

	require.Len(t, board, 2)
	assert.Equal(t, "o-early", board[0].OrderID)
	assert.Equal(t, "o-late", board[1].OrderID)
}

func TestKitchenBoard_StationRoleSeesOnlyItsItems(t *testing.T) {
	board := KitchenBoard(boardFixture(), entity.RoleGrill)

	// Only the table order has a burger line; the wings-only order is
	// hidden entirely for the grill.
	require.Len(t, board, 1)
	assert.Equal(t, "o-late", board[0].OrderID)
	require.Len(t, board[0].Items, 1)
	assert.Equal(t, "Hamburguesas", board[0].Items[0].Category)
	assert.Nil(t, board[0].Meta, "station roles must not see order metadata")
}

func TestKitchenBoard_PrivilegedRoleSeesMetadata(t *testing.T) {
	board := KitchenBoard(boardFixture(), entity.RoleCourier)

	require.Len(t, board, 2)
	require.NotNil(t, board[0].Meta)
	assert.Equal(t, "Luis", board[0].Meta.UserName)
	assert.Equal(t, "Av. Siempre Viva 742", board[0].Meta.Detail)
}

func TestKitchenBoard_NonStaffSeesNothing(t *testing.T) {
	assert.Nil(t, KitchenBoard(boardFixture(), entity.RoleCustomer))
	assert.Nil(t, KitchenBoard(boardFixture(), entity.Role("visitor")))
}

func TestKitchenBoard_EmptySnapshot(t *testing.T) {
	assert.Empty(t, KitchenBoard(nil, entity.RoleAdmin))
}
