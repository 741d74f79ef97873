package services

import (
	"context"
	"strconv"
	"strings"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
	"jobportal/internal/pagination"
	"jobportal/internal/validation"
)

// JobRoleService sits between the handlers and the backend API for
// everything job-role shaped: listing with filters and pagination,
// detail lookup, and the admin create/update/delete path.
type JobRoleService struct {
	API       *api.Client
	Validator *validation.JobRoleValidator
}

func NewJobRoleService(client *api.Client) *JobRoleService {
	return &JobRoleService{
		API:       client,
		Validator: validation.NewJobRoleValidator(),
	}
}

// List fetches one page of postings and builds the navigation window
// the template renders underneath them.
func (s *JobRoleService) List(ctx context.Context, basePath string, q dtos.ListQuery) (*dtos.JobRoleListView, error) {
	page, err := s.API.ListJobRoles(ctx, q.Page, q.Limit, q.Params())
	if err != nil {
		return nil, err
	}

	return &dtos.JobRoleListView{
		Roles:      page.Roles,
		Window:     pagination.BuildPaginationURLs(basePath, page.Page, page.TotalPages, q.Limit, q.Params()),
		Query:      q,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}, nil
}

// Get fetches a single posting.
func (s *JobRoleService) Get(ctx context.Context, id int) (*models.JobRole, error) {
	return s.API.GetJobRole(ctx, id)
}

// Create validates the admin form and forwards a new posting to the
// backend. Whatever status the client submitted is discarded: new
// postings always start Open.
func (s *JobRoleService) Create(ctx context.Context, token string, form dtos.JobRoleForm) (*models.JobRole, validation.Result, error) {
	result := s.Validator.Validate(formToInput(form), false)
	if !result.Valid {
		return nil, result, nil
	}

	role := formToRole(form)
	role.Status = models.StatusOpen
	created, err := s.API.CreateJobRole(ctx, token, role)
	return created, result, err
}

// Update validates the admin form and replaces an existing posting. The
// past-date rule is skipped so historical postings stay editable, and
// the submitted status is kept as-is.
func (s *JobRoleService) Update(ctx context.Context, token string, id int, form dtos.JobRoleForm) (*models.JobRole, validation.Result, error) {
	result := s.Validator.Validate(formToInput(form), true)
	if !result.Valid {
		return nil, result, nil
	}

	updated, err := s.API.UpdateJobRole(ctx, token, id, formToRole(form))
	return updated, result, err
}

// Delete removes a posting.
func (s *JobRoleService) Delete(ctx context.Context, token string, id int) error {
	return s.API.DeleteJobRole(ctx, token, id)
}

func formToInput(f dtos.JobRoleForm) validation.JobRoleInput {
	return validation.JobRoleInput{
		RoleName:              f.RoleName,
		Description:           f.Description,
		Responsibilities:      f.Responsibilities,
		JobSpecLink:           f.JobSpecLink,
		Location:              f.Location,
		Capability:            f.Capability,
		Band:                  f.Band,
		ClosingDate:           f.ClosingDate,
		Status:                f.Status,
		NumberOfOpenPositions: f.NumberOfOpenPositions,
	}
}

// formToRole trims every string field on its way out of the portal.
// Trimming lives here at the boundary, not inside the validator, so the
// user's original input is what gets echoed back on a failure.
func formToRole(f dtos.JobRoleForm) models.JobRole {
	positions, _ := strconv.Atoi(strings.TrimSpace(f.NumberOfOpenPositions))
	return models.JobRole{
		RoleName:              strings.TrimSpace(f.RoleName),
		Description:           strings.TrimSpace(f.Description),
		Responsibilities:      strings.TrimSpace(f.Responsibilities),
		JobSpecLink:           strings.TrimSpace(f.JobSpecLink),
		Location:              strings.TrimSpace(f.Location),
		Capability:            strings.TrimSpace(f.Capability),
		Band:                  strings.TrimSpace(f.Band),
		ClosingDate:           strings.TrimSpace(f.ClosingDate),
		Status:                strings.TrimSpace(f.Status),
		NumberOfOpenPositions: positions,
	}
}
