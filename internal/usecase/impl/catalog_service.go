// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/pricing"
	"fogon/internal/domain/repository"
	"fogon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListMenu returns the full menu, in-stock and out-of-stock alike. The
// storefront greys out unavailable items instead of hiding them.
func (srv *catalogService) ListMenu(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return products, nil
}

// GetProduct retrieves a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CustomizeProduct prices a customization selection against the product.
func (srv *catalogService) CustomizeProduct(ctx context.Context, productID string, sel pricing.Selection) (*usecase.CustomizationResult, error) {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, domainerrors.ErrProductOutOfStock
	}

	quote, err := pricing.Compute(product, sel)
	if err != nil {
		return nil, mapPricingError(err)
	}

	return &usecase.CustomizationResult{
		UnitPrice:   quote.UnitPrice,
		Description: quote.Description,
	}, nil
}

// CreateProduct adds a new product to the menu.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "name", input.Name, "category", input.Category)

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(product, input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces an existing product's attributes.
func (srv *catalogService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", id)

	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input)
	product.UpdatedAt = time.Now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// SetInStock flips only the availability flag.
func (srv *catalogService) SetInStock(ctx context.Context, id string, inStock bool) error {
	srv.logger.Info("Setting product availability", "productID", id, "inStock", inStock)

	if err := srv.productRepo.SetInStock(ctx, id, inStock); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to set product availability")
	}

	return nil
}

// DeleteProduct removes the product from the menu. Existing order lines
// keep their embedded copy of the product data.
func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	srv.logger.Info("Deleting product", "productID", id)

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = input.Name
	product.Price = input.Price
	product.Category = input.Category
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	product.InStock = input.InStock
	product.StandardIngredients = input.StandardIngredients
	product.ExtraPiecePrice = input.ExtraPiecePrice
	product.ExtraSaucePotPrice = input.ExtraSaucePotPrice
	product.ExtraSnackPrice = input.ExtraSnackPrice
	product.FlavorOptions = input.FlavorOptions
	product.Extras = input.Extras
}

// mapPricingError translates calculator sentinel errors into the API error
// catalog.
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrFlavorRequired):
		return domainerrors.ErrFlavorRequired
	case errors.Is(err, pricing.ErrSplitFlavorsIncomplete):
		return domainerrors.ErrSplitFlavorsIncomplete
	case errors.Is(err, pricing.ErrBathedSauceRequired):
		return domainerrors.ErrBathedSauceRequired
	default:
		return errors.Wrap(err, "failed to price selection")
	}
}
