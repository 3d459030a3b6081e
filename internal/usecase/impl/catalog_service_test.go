package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/pricing"
	"fogon/internal/domain/repository"
	mockRepo "fogon/internal/mocks/repository"
	"fogon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogFixtures holds all test dependencies for catalog service tests.
type catalogFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return catalogFixtures{service: service, productRepo: productRepo}
}

func TestCustomizeProduct_PricesSelection(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "p1").Return(&entity.Product{
		ID:              "p1",
		Name:            "Alitas 10pz",
		Price:           120,
		Category:        "Alitas",
		InStock:         true,
		ExtraPiecePrice: 9,
		FlavorOptions:   []string{"BBQ"},
	}, nil)

	result, err := fx.service.CustomizeProduct(ctx, "p1", pricing.Selection{
		Flavor:      "BBQ",
		ExtraPieces: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 165.0, result.UnitPrice)
	assert.Equal(t, "+5 piezas | Sabor: BBQ", result.Description)
}

func TestCustomizeProduct_OutOfStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "p1").Return(&entity.Product{
		ID:      "p1",
		Price:   120,
		InStock: false,
	}, nil)

	_, err := fx.service.CustomizeProduct(ctx, "p1", pricing.Selection{})
	assert.ErrorIs(t, err, domainerrors.ErrProductOutOfStock)
}

func TestCustomizeProduct_MapsPricingErrors(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "p1").Return(&entity.Product{
		ID:            "p1",
		Price:         120,
		Category:      "Alitas",
		InStock:       true,
		FlavorOptions: []string{"BBQ", "Buffalo"},
	}, nil)

	_, err := fx.service.CustomizeProduct(ctx, "p1", pricing.Selection{})
	assert.ErrorIs(t, err, domainerrors.ErrFlavorRequired)
}

func TestCustomizeProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CustomizeProduct(ctx, "missing", pricing.Selection{})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCreateProduct_AssignsIDAndTimestamps(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID != "" && !p.CreatedAt.IsZero()
	})).Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:     "Torta de pierna",
		Price:    85,
		Category: "Tortas",
		InStock:  true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Torta de pierna", product.Name)
}

func TestSetInStock_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("SetInStock", ctx, "missing", false).Return(repository.ErrProductNotFound)

	err := fx.service.SetInStock(ctx, "missing", false)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
