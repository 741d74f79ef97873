package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/validation"
)

// JobRoleHandler renders the public listing/detail pages and the admin
// create/edit/delete flow.
type JobRoleHandler struct {
	Jobs *services.JobRoleService
}

// NewJobRoleHandler creates the handler with dependencies
func NewJobRoleHandler(jobs *services.JobRoleService) *JobRoleHandler {
	return &JobRoleHandler{Jobs: jobs}
}

// List is GET /job-roles.
func (h *JobRoleHandler) List(c *gin.Context) {
	var q dtos.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		// Out-of-range paging parameters just reset the listing;
		// anything else in the query string is malformed enough to log.
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			log.Printf("bad listing query %q: %v", c.Request.URL.RawQuery, err)
		}
		q = dtos.ListQuery{Page: 1, Limit: 10}
	}

	view, err := h.Jobs.List(c.Request.Context(), "/job-roles", q)
	if err != nil {
		renderBackendError(c, err)
		return
	}

	c.HTML(http.StatusOK, "job-list.html", gin.H{
		"View":         view,
		"Locations":    models.Locations,
		"Capabilities": models.Capabilities,
		"Bands":        models.Bands,
		"Role":         middleware.Role(c),
	})
}

// Detail is GET /job-roles/:id.
func (h *JobRoleHandler) Detail(c *gin.Context) {
	id, ok := validation.ValidateID(c.Param("id"))
	if !ok {
		renderNotFound(c)
		return
	}

	role, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		renderBackendError(c, err)
		return
	}

	c.HTML(http.StatusOK, "job-detail.html", gin.H{
		"JobRole":              role,
		"DescriptionHTML":      multiline(role.Description),
		"ResponsibilitiesHTML": multiline(role.Responsibilities),
		"Role":                 middleware.Role(c),
	})
}

// NewForm is GET /admin/job-roles/new.
func (h *JobRoleHandler) NewForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, dtos.JobRoleForm{}, "", 0)
}

// Create is POST /admin/job-roles.
func (h *JobRoleHandler) Create(c *gin.Context) {
	var form dtos.JobRoleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, "All fields are required", 0)
		return
	}

	created, result, err := h.Jobs.Create(c.Request.Context(), middleware.Token(c), form)
	if !result.Valid {
		h.renderForm(c, http.StatusBadRequest, form, result.First(), 0)
		return
	}
	if err != nil {
		renderBackendError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/job-roles/%d", created.ID))
}

// EditForm is GET /admin/job-roles/:id/edit.
func (h *JobRoleHandler) EditForm(c *gin.Context) {
	id, ok := validation.ValidateID(c.Param("id"))
	if !ok {
		renderNotFound(c)
		return
	}

	role, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		renderBackendError(c, err)
		return
	}

	h.renderForm(c, http.StatusOK, roleToForm(role), "", id)
}

// Update is POST /admin/job-roles/:id/edit.
func (h *JobRoleHandler) Update(c *gin.Context) {
	id, ok := validation.ValidateID(c.Param("id"))
	if !ok {
		renderNotFound(c)
		return
	}

	var form dtos.JobRoleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, "All fields are required", id)
		return
	}

	updated, result, err := h.Jobs.Update(c.Request.Context(), middleware.Token(c), id, form)
	if !result.Valid {
		h.renderForm(c, http.StatusBadRequest, form, result.First(), id)
		return
	}
	if err != nil {
		renderBackendError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/job-roles/%d", updated.ID))
}

// Delete is POST /admin/job-roles/:id/delete.
func (h *JobRoleHandler) Delete(c *gin.Context) {
	id, ok := validation.ValidateID(c.Param("id"))
	if !ok {
		renderNotFound(c)
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), middleware.Token(c), id); err != nil {
		renderBackendError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/job-roles")
}

// renderForm re-renders the admin form, echoing the user's input back
// so nothing has to be retyped. id is 0 on the create path.
func (h *JobRoleHandler) renderForm(c *gin.Context, status int, form dtos.JobRoleForm, errMsg string, id int) {
	c.HTML(status, "job-form.html", gin.H{
		"Form":         form,
		"Error":        errMsg,
		"EditID":       id,
		"Locations":    models.Locations,
		"Capabilities": models.Capabilities,
		"Bands":        models.Bands,
		"Statuses":     models.Statuses,
		"Role":         middleware.Role(c),
	})
}

func roleToForm(role *models.JobRole) dtos.JobRoleForm {
	return dtos.JobRoleForm{
		RoleName:              role.RoleName,
		Description:           role.Description,
		Responsibilities:      role.Responsibilities,
		JobSpecLink:           role.JobSpecLink,
		Location:              role.Location,
		Capability:            role.Capability,
		Band:                  role.Band,
		ClosingDate:           role.ClosingDate,
		Status:                role.Status,
		NumberOfOpenPositions: fmt.Sprintf("%d", role.NumberOfOpenPositions),
	}
}

// multiline escapes backend text and turns newlines into <br> so long
// descriptions keep their paragraphs. Escaping happens first, so the
// only markup in the result is ours.
func multiline(s string) template.HTML {
	escaped := validation.SanitizeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// renderNotFound renders the shared 404 page.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "Job role not found",
	})
}

// renderBackendError maps API client failures onto user-facing pages.
func renderBackendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, api.ErrNotFound):
		renderNotFound(c)
	case errors.Is(err, api.ErrUnauthorized):
		c.Redirect(http.StatusFound, "/login")
	default:
		log.Printf("backend request failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Something went wrong. Please try again later.",
		})
	}
}
