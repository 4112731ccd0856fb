package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for training courses.
type CourseHandler struct {
	catalog ports.CatalogService
}

func NewCourseHandler(catalog ports.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// List handles GET /api/courses. Only published courses are returned.
//
// @Summary      List published courses
// @Tags         courses
// @Produce      json
// @Param        level  query     string  false  "Filter by level"  Enums(beginner, intermediate, advanced)
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  map[string]any
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	page, err := h.catalog.ListCourses(c.Request().Context(), ports.CourseFilter{
		Level: c.QueryParam("level"),
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return respondPage(c, "courses", page)
}

// Get handles GET /api/courses/:slug. Unpublished courses do not exist
// to the public API.
//
// @Summary      Get a course by slug
// @Tags         courses
// @Produce      json
// @Param        slug  path      string  true  "Course slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /courses/{slug} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.catalog.GetCourse(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"course": course})
}

// ListAdmin handles GET /api/courses/admin/all.
//
// @Summary      List all courses (back office)
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /courses/admin/all [get]
func (h *CourseHandler) ListAdmin(c echo.Context) error {
	courses, err := h.catalog.ListCoursesAdmin(c.Request().Context())
	if err != nil {
		return err
	}
	return respondItems(c, "courses", courses)
}

// Create handles POST /api/courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.catalog.CreateCourse(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, map[string]any{"course": course})
}

// Update handles PATCH /api/courses/:id.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Course ID"
// @Param        body  body      updateCourseRequest  true  "Fields to update"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /courses/{id} [patch]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.catalog.UpdateCourse(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"course": course})
}

// Delete handles DELETE /api/courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id  path  string  true  "Course ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteCourse(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleStatus handles PATCH /api/courses/:id/toggle-status.
//
// @Summary      Flip a course between published and unpublished
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Course ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id}/toggle-status [patch]
func (h *CourseHandler) ToggleStatus(c echo.Context) error {
	course, err := h.catalog.ToggleCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"course": course})
}
