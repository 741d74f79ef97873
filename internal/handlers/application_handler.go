package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/middleware"
	"jobportal/internal/services"
	"jobportal/internal/validation"
)

// ApplicationHandler renders the application form and accepts the
// multipart submission with the CV upload.
type ApplicationHandler struct {
	Jobs         *services.JobRoleService
	Applications *services.ApplicationService
}

func NewApplicationHandler(jobs *services.JobRoleService, apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Jobs: jobs, Applications: apps}
}

// Form is GET /job-roles/:id/apply.
func (h *ApplicationHandler) Form(c *gin.Context) {
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

	h.renderForm(c, http.StatusOK, role.ID, role.RoleName, dtos.ApplicationForm{}, "")
}

// Submit is POST /job-roles/:id/apply. The CV arrives under the "cv"
// multipart field; its type is sniffed from the bytes rather than
// trusted from the Content-Type header the browser sent.
func (h *ApplicationHandler) Submit(c *gin.Context) {
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

	var form dtos.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, role.ID, role.RoleName, form, "Applicant name and email are required")
		return
	}

	var descriptor *validation.FileDescriptor
	var cv io.Reader

	header, err := c.FormFile("cv")
	if err == nil {
		f, openErr := header.Open()
		if openErr != nil {
			log.Printf("open uploaded cv: %v", openErr)
			h.renderForm(c, http.StatusBadRequest, role.ID, role.RoleName, form, "The uploaded file could not be read")
			return
		}
		defer f.Close()

		mtype, detectErr := mimetype.DetectReader(f)
		if detectErr != nil {
			log.Printf("sniff uploaded cv: %v", detectErr)
			h.renderForm(c, http.StatusBadRequest, role.ID, role.RoleName, form, "The uploaded file could not be read")
			return
		}
		if _, err := f.Seek(0, 0); err != nil {
			log.Printf("rewind uploaded cv: %v", err)
			h.renderForm(c, http.StatusBadRequest, role.ID, role.RoleName, form, "The uploaded file could not be read")
			return
		}

		descriptor = &validation.FileDescriptor{
			OriginalName: header.Filename,
			MimeType:     mtype.String(),
			SizeBytes:    header.Size,
		}
		cv = f
	}

	result, err := h.Applications.Submit(c.Request.Context(), role.ID, form, descriptor, cv)
	if !result.Valid {
		h.renderForm(c, http.StatusBadRequest, role.ID, role.RoleName, form, result.First())
		return
	}
	if err != nil {
		renderBackendError(c, err)
		return
	}

	c.HTML(http.StatusOK, "apply-success.html", gin.H{
		"RoleName": role.RoleName,
		"Role":     middleware.Role(c),
	})
}

func (h *ApplicationHandler) renderForm(c *gin.Context, status, jobID int, roleName string, form dtos.ApplicationForm, errMsg string) {
	c.HTML(status, "apply.html", gin.H{
		"JobRoleID": jobID,
		"RoleName":  roleName,
		"Form":      form,
		"Error":     errMsg,
		"Role":      middleware.Role(c),
	})
}
