// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fogon/internal/delivery/http/response"
	"fogon/internal/domain/pricing"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	MediaUC   usecase.MediaUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for menu and product handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	mediaUC   usecase.MediaUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		mediaUC:   params.MediaUC,
		logger:    params.Logger,
	}
}

// ListMenu returns the whole menu.
func (h *CatalogHandler) ListMenu(c echo.Context) error {
	products, err := h.catalogUC.ListMenu(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns a single product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Customize prices a customization selection for a product.
func (h *CatalogHandler) Customize(c echo.Context) error {
	var sel pricing.Selection
	if err := c.Bind(&sel); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customization input")
	}

	result, err := h.catalogUC.CustomizeProduct(c.Request().Context(), c.Param("id"), sel)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CreateProduct adds a product to the menu. Admin only.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Producto creado")
}

// UpdateProduct replaces a product's attributes. Admin only.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Producto actualizado")
}

// SetStockRequest represents the request body for flipping availability.
type SetStockRequest struct {
	InStock bool `json:"in_stock"`
}

// SetStock flips a product's availability flag. Admin only.
func (h *CatalogHandler) SetStock(c echo.Context) error {
	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := h.catalogUC.SetInStock(c.Request().Context(), c.Param("id"), req.InStock); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Disponibilidad actualizada")
}

// DeleteProduct removes a product from the menu. Admin only.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Producto eliminado")
}

// UploadImage pushes a product image to the media host and returns its
// public URL. Admin only.
func (h *CatalogHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.mediaUC.UploadImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Imagen subida")
}
