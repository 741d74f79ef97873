package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
	"jobportal/internal/validation"
)

// ApplicationService validates applications and forwards them, CV
// included, to the backend.
type ApplicationService struct {
	API       *api.Client
	Validator *validation.ApplicationValidator
}

func NewApplicationService(client *api.Client) *ApplicationService {
	return &ApplicationService{
		API:       client,
		Validator: validation.NewApplicationValidator(),
	}
}

// Submit validates the form plus CV descriptor and, when everything
// passes, streams the application to the backend under a fresh stored
// filename. cv may be nil when no file arrived; validation reports that
// as its own failure.
func (s *ApplicationService) Submit(ctx context.Context, jobRoleID int, form dtos.ApplicationForm, file *validation.FileDescriptor, cv io.Reader) (validation.Result, error) {
	result := s.Validator.Validate(validation.ApplicationInput{
		ApplicantName: form.ApplicantName,
		Email:         form.Email,
		CoverLetter:   form.CoverLetter,
		CV:            file,
	})
	if !result.Valid {
		return result, nil
	}

	app := models.Application{
		JobRoleID:     jobRoleID,
		ApplicantName: strings.TrimSpace(norm.NFC.String(form.ApplicantName)),
		Email:         strings.TrimSpace(form.Email),
		CoverLetter:   strings.TrimSpace(form.CoverLetter),
		CVFileName:    storedFileName(file.OriginalName),
	}
	return result, s.API.SubmitApplication(ctx, app, cv)
}

// storedFileName replaces the user's filename with a UUID so uploads
// can never collide or smuggle path separators downstream, keeping only
// the original extension.
func storedFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return uuid.NewString() + ext
}
