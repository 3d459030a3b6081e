// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/pricing"
)

// CatalogUsecase defines menu browsing, the product customizer and the
// admin catalog operations.
type CatalogUsecase interface {
	ListMenu(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CustomizeProduct prices a selection against a product and returns the
	// quote to render in the customizer.
	CustomizeProduct(ctx context.Context, productID string, sel pricing.Selection) (*CustomizationResult, error)

	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)
	SetInStock(ctx context.Context, id string, inStock bool) error
	DeleteProduct(ctx context.Context, id string) error
}

// CustomizationResult is the priced outcome shown in the customizer.
type CustomizationResult struct {
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}

// --- Input DTOs ---

// ProductInput defines the data required to create or replace a product.
type ProductInput struct {
	Name                string                `json:"name" validate:"required"`
	Price               float64               `json:"price" validate:"gte=0"`
	Category            string                `json:"category" validate:"required"`
	Description         string                `json:"description"`
	ImageURL            string                `json:"image_url"`
	InStock             bool                  `json:"in_stock"`
	StandardIngredients []string              `json:"standard_ingredients"`
	ExtraPiecePrice     float64               `json:"extra_piece_price" validate:"gte=0"`
	ExtraSaucePotPrice  float64               `json:"extra_sauce_pot_price" validate:"gte=0"`
	ExtraSnackPrice     float64               `json:"extra_snack_price" validate:"gte=0"`
	FlavorOptions       []string              `json:"flavor_options"`
	Extras              []entity.ProductExtra `json:"extras"`
}
