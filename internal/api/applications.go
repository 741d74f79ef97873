package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"jobportal/internal/models"
)

// SubmitApplication forwards an application plus the CV bytes to the
// backend as a multipart request. The CV goes under the "cv" field with
// the stored filename the service picked.
func (c *Client) SubmitApplication(ctx context.Context, app models.Application, cv io.Reader) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fields := map[string]string{
		"applicantName":  app.ApplicantName,
		"applicantEmail": app.Email,
		"coverLetter":    app.CoverLetter,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("encode application: %w", err)
		}
	}

	part, err := w.CreateFormFile("cv", app.CVFileName)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	if _, err := io.Copy(part, cv); err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode application: %w", err)
	}

	path := fmt.Sprintf("/api/job-roles/%d/applications", app.JobRoleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}
