package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

type submitApplicationRequest struct {
	Position    string `json:"position" validate:"required"`
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Resume      string `json:"resume" validate:"required"`
	CoverLetter string `json:"coverLetter"`
}

func (r submitApplicationRequest) toInput() ports.ApplicationInput {
	return ports.ApplicationInput{
		Position:    r.Position,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Resume:      r.Resume,
		CoverLetter: r.CoverLetter,
	}
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted rejected accepted"`
}

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Submit handles POST /api/applications.
//
// @Summary      Submit a job application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.service.Submit(c.Request().Context(), user, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, map[string]any{"application": application})
}

// ListMine handles GET /api/applications/my-applications.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /applications/my-applications [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	applications, err := h.service.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respondItems(c, "applications", applications)
}

// Get handles GET /api/applications/:id. Applicant or admin only.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Application ID"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	application, err := h.service.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"application": application})
}

// Delete handles DELETE /api/applications/:id. Applicant or admin only.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAll handles GET /api/applications, the back-office listing.
//
// @Summary      List all applications (back office)
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /applications [get]
func (h *ApplicationHandler) ListAll(c echo.Context) error {
	applications, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respondItems(c, "applications", applications)
}

// UpdateStatus handles PATCH /api/applications/:id/status, back office only.
//
// @Summary      Update an application's review status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Application ID"
// @Param        body  body      updateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"application": application})
}
