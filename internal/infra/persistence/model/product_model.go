package model

import (
	"time"

	"fogon/internal/domain/entity"
)

// ProductModel is the `products` collection document shape. Field names
// match what the storefront clients already read and write.
type ProductModel struct {
	Name                string       `firestore:"name"`
	Price               float64      `firestore:"price"`
	Category            string       `firestore:"category"`
	Description         string       `firestore:"description"`
	ImageURL            string       `firestore:"image"`
	InStock             bool         `firestore:"inStock"`
	StandardIngredients []string     `firestore:"standardIngredients,omitempty"`
	ExtraPiecePrice     float64      `firestore:"extraPiecePrice,omitempty"`
	ExtraSaucePotPrice  float64      `firestore:"extraSaucePotPrice,omitempty"`
	ExtraSnackPrice     float64      `firestore:"extraSnackPrice,omitempty"`
	FlavorOptions       []string     `firestore:"flavorOptions,omitempty"`
	Extras              []ExtraModel `firestore:"extras,omitempty"`
	CreatedAt           any          `firestore:"createdAt,omitempty"`
	UpdatedAt           any          `firestore:"updatedAt,omitempty"`
}

// ExtraModel is one flat add-on inside a product document.
type ExtraModel struct {
	Name  string  `firestore:"name"`
	Price float64 `firestore:"price"`
}

// ToEntity converts the document into the domain product.
func (m *ProductModel) ToEntity(id string) *entity.Product {
	extras := make([]entity.ProductExtra, 0, len(m.Extras))
	for _, e := range m.Extras {
		extras = append(extras, entity.ProductExtra{Name: e.Name, Price: e.Price})
	}

	return &entity.Product{
		ID:                  id,
		Name:                m.Name,
		Price:               m.Price,
		Category:            m.Category,
		Description:         m.Description,
		ImageURL:            m.ImageURL,
		InStock:             m.InStock,
		StandardIngredients: m.StandardIngredients,
		ExtraPiecePrice:     m.ExtraPiecePrice,
		ExtraSaucePotPrice:  m.ExtraSaucePotPrice,
		ExtraSnackPrice:     m.ExtraSnackPrice,
		FlavorOptions:       m.FlavorOptions,
		Extras:              extras,
		CreatedAt:           NormalizeTime(m.CreatedAt),
		UpdatedAt:           NormalizeTime(m.UpdatedAt),
	}
}

// ProductFromEntity converts a domain product into its document shape.
func ProductFromEntity(product *entity.Product) *ProductModel {
	extras := make([]ExtraModel, 0, len(product.Extras))
	for _, e := range product.Extras {
		extras = append(extras, ExtraModel{Name: e.Name, Price: e.Price})
	}

	createdAt := product.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &ProductModel{
		Name:                product.Name,
		Price:               product.Price,
		Category:            product.Category,
		Description:         product.Description,
		ImageURL:            product.ImageURL,
		InStock:             product.InStock,
		StandardIngredients: product.StandardIngredients,
		ExtraPiecePrice:     product.ExtraPiecePrice,
		ExtraSaucePotPrice:  product.ExtraSaucePotPrice,
		ExtraSnackPrice:     product.ExtraSnackPrice,
		FlavorOptions:       product.FlavorOptions,
		Extras:              extras,
		CreatedAt:           createdAt,
		UpdatedAt:           time.Now(),
	}
}
