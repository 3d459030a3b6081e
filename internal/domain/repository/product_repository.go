// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fogon/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is
// not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for menu persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its document id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List retrieves the full menu, in-stock and out-of-stock alike.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// SetInStock flips only the availability flag.
	SetInStock(ctx context.Context, id string, inStock bool) error

	// Delete removes the product document.
	Delete(ctx context.Context, id string) error
}
