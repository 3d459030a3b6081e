package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddMergesSameCustomization(t *testing.T) {
	cart := &Cart{}
	line := CartItem{
		ProductID: "p1",
		Name:      "Alitas 10pz",
		BasePrice: 120,
		Quantity:  1,
		Customization: &Customization{
			Description: "Sabor: BBQ",
			UnitPrice:   128,
		},
	}

	cart.Add(line)
	cart.Add(line)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddKeepsDifferentCustomizationsApart(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{
		ProductID:     "p1",
		Quantity:      1,
		Customization: &Customization{Description: "Sabor: BBQ", UnitPrice: 128},
	})
	cart.Add(CartItem{
		ProductID:     "p1",
		Quantity:      1,
		Customization: &Customization{Description: "Sabor: Buffalo", UnitPrice: 128},
	})

	assert.Len(t, cart.Items, 2)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{ProductID: "p1", Quantity: 2})
	cart.Add(CartItem{ProductID: "p2", Quantity: 1})

	cart.SetQuantity(0, 0)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCart_SubtotalUsesCustomizedUnitPrice(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{ProductID: "p1", BasePrice: 95, Quantity: 2})
	cart.Add(CartItem{
		ProductID:     "p2",
		BasePrice:     120,
		Quantity:      1,
		Customization: &Customization{Description: "Sabor: BBQ", UnitPrice: 128},
	})

	assert.Equal(t, 318.0, cart.Subtotal())
}

func TestCart_OrderItemsCarryCustomizationSummary(t *testing.T) {
	cart := &Cart{}
	cart.Add(CartItem{
		ProductID:     "p1",
		Name:          "Alitas 10pz",
		Category:      "Alitas",
		BasePrice:     120,
		Quantity:      2,
		Customization: &Customization{Description: "Sabor: BBQ", UnitPrice: 128},
	})

	items := cart.OrderItems()

	assert.Len(t, items, 1)
	assert.Equal(t, 128.0, items[0].Price)
	assert.Equal(t, "Sabor: BBQ", items[0].Customization)
	assert.Equal(t, 256.0, items[0].LineTotal())
}
