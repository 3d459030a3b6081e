// Package entity contains the core business objects of the project.
package entity

// Customization is the priced outcome of the product customizer for one
// cart line: the final per-unit price and the human-readable summary the
// kitchen sees. Two lines for the same product with different descriptions
// are distinct lines.
type Customization struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// CartItem is one line in a cart.
type CartItem struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	BasePrice     float64        `json:"base_price"`
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
}

// UnitPrice returns the effective per-unit price of the line.
func (i CartItem) UnitPrice() float64 {
	if i.Customization != nil {
		return i.Customization.UnitPrice
	}

	return i.BasePrice
}

// key is the merge identity of a cart line: same product, same
// customization summary.
func (i CartItem) key() string {
	desc := ""
	if i.Customization != nil {
		desc = i.Customization.Description
	}

	return i.ProductID + "\x00" + desc
}

// Cart is an ordered collection of lines. It is plain data owned by the
// caller, not a shared singleton.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges the item into the cart. A line with the same product and
// customization has its quantity bumped; anything else appends a new line.
// Quantities below 1 are treated as 1.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for idx := range c.Items {
		if c.Items[idx].key() == item.key() {
			c.Items[idx].Quantity += item.Quantity

			return
		}
	}

	c.Items = append(c.Items, item)
}

// SetQuantity updates the quantity of the line at the given index. A
// quantity of zero or less removes the line.
func (c *Cart) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(c.Items) {
		return
	}

	if quantity < 1 {
		c.Items = append(c.Items[:index], c.Items[index+1:]...)

		return
	}

	c.Items[index].Quantity = quantity
}

// Subtotal sums unit price x quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.UnitPrice() * float64(item.Quantity)
	}

	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// OrderItems converts the cart lines into persisted order lines.
func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		item := OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Price:     line.UnitPrice(),
			Quantity:  line.Quantity,
		}
		if line.Customization != nil {
			item.Customization = line.Customization.Description
		}
		items = append(items, item)
	}

	return items
}
