package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the hardware catalog.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        featured  query     bool    false  "Only featured products"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  map[string]any
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.catalog.ListProducts(c.Request().Context(), ports.ProductFilter{
		Category:     c.QueryParam("category"),
		FeaturedOnly: c.QueryParam("featured") == "true",
		Page:         queryInt(c, "page"),
		Limit:        queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, "products", page)
}

// ListFeatured handles GET /api/products/featured.
//
// @Summary      List featured products
// @Tags         products
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of products"
// @Success      200    {object}  map[string]any
// @Router       /products/featured [get]
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.catalog.ListFeaturedProducts(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return respondItems(c, "products", products)
}

// Get handles GET /api/products/:slug.
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /products/{slug} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"product": product})
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, map[string]any{"product": product})
}

// Update handles PATCH /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"product": product})
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
