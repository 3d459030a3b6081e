// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Product is a menu item offered by the store. The Category tag is an open
// string; pricing and customization behavior is derived from it through
// pricing.ResolveFamily rather than matched ad hoc at every call site.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // Base price, always >= 0.
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Customization metadata. All optional; absent price fields are treated
	// as zero by the pricing calculator, never as an error.
	StandardIngredients []string       `json:"standard_ingredients,omitempty"`
	ExtraPiecePrice     float64        `json:"extra_piece_price,omitempty"`
	ExtraSaucePotPrice  float64        `json:"extra_sauce_pot_price,omitempty"`
	ExtraSnackPrice     float64        `json:"extra_snack_price,omitempty"`
	FlavorOptions       []string       `json:"flavor_options,omitempty"`
	Extras              []ProductExtra `json:"extras,omitempty"`
}

// ProductExtra is a flat checkbox add-on with its own price, orthogonal to
// the category-specific customization rules.
type ProductExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtraPrice returns the price of the named add-on, or 0 when the product
// does not offer it.
func (p *Product) ExtraPrice(name string) float64 {
	for _, e := range p.Extras {
		if e.Name == name {
			return e.Price
		}
	}

	return 0
}
