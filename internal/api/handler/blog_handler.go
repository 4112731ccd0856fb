package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blogs, a paginated view of published posts.
//
// @Summary      List published blog posts
// @Tags         blogs
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        tag       query     string  false  "Filter by tag"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  map[string]any
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	page, err := h.service.ListPublished(c.Request().Context(), ports.BlogFilter{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, "blogs", page)
}

// Get handles GET /api/blogs/:slug. Drafts are visible only to their
// author or an admin; for anyone else the post does not exist.
//
// @Summary      Get a blog post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), optionalUser(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"blog": blog})
}

// ListAdmin handles GET /api/blogs/admin/all: every post, any status.
//
// @Summary      List all blog posts (back office)
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /blogs/admin/all [get]
func (h *BlogHandler) ListAdmin(c echo.Context) error {
	blogs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respondItems(c, "blogs", blogs)
}

// Create handles POST /api/blogs. The acting principal becomes the author.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog post"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.service.Create(c.Request().Context(), user, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, map[string]any{"blog": blog})
}

// Update handles PATCH /api/blogs/:id. Author or admin only.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updateBlogRequest  true  "Fields to update"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /blogs/{id} [patch]
func (h *BlogHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.service.Update(c.Request().Context(), user, c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"blog": blog})
}

// Delete handles DELETE /api/blogs/:id. Author or admin only.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
