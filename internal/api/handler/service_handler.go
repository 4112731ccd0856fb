package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for service offerings.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List handles GET /api/services. Only published offerings are returned.
//
// @Summary      List published services
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  map[string]any
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	page, err := h.catalog.ListServices(c.Request().Context(), ports.ServiceFilter{
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, "services", page)
}

// Get handles GET /api/services/:slug. Unpublished offerings do not
// exist to the public API.
//
// @Summary      Get a service by slug
// @Tags         services
// @Produce      json
// @Param        slug  path      string  true  "Service slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /services/{slug} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	service, err := h.catalog.GetService(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"service": service})
}

// ListAdmin handles GET /api/services/admin/all.
//
// @Summary      List all services (back office)
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /services/admin/all [get]
func (h *ServiceHandler) ListAdmin(c echo.Context) error {
	services, err := h.catalog.ListServicesAdmin(c.Request().Context())
	if err != nil {
		return err
	}
	return respondItems(c, "services", services)
}

// Create handles POST /api/services.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.catalog.CreateService(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, map[string]any{"service": service})
}

// Update handles PATCH /api/services/:id.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to update"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /services/{id} [patch]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.catalog.UpdateService(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"service": service})
}

// Delete handles DELETE /api/services/:id.
//
// @Summary      Delete a service
// @Tags         services
// @Security     BearerAuth
// @Param        id  path  string  true  "Service ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleStatus handles PATCH /api/services/:id/toggle-status.
//
// @Summary      Flip a service between published and unpublished
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Service ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /services/{id}/toggle-status [patch]
func (h *ServiceHandler) ToggleStatus(c echo.Context) error {
	service, err := h.catalog.ToggleService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"service": service})
}
