package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the shop catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a catalog entry.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                    false  "Rejects repeated submissions"
// @Param        body             body      ports.CreateProductInput  true   "Product"
// @Success      200              {object}  domain.Product
// @Failure      403              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.CreateProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), p, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update edits a catalog entry.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product ID"
// @Param        body  body      ports.ProductPatch  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.ProductPatch
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a catalog entry.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
