package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jobportal/internal/models"
)

// JobRolePage is one page of listing results as the backend returns it.
type JobRolePage struct {
	Roles      []models.JobRole `json:"data"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// ListJobRoles fetches one page of postings, filtered by whatever is set
// in params.
func (c *Client) ListJobRoles(ctx context.Context, page, limit int, params models.SearchParams) (*JobRolePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Capability != "" {
		q.Set("capability", params.Capability)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.Band != "" {
		q.Set("band", params.Band)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var result JobRolePage
	err := c.doJSON(ctx, http.MethodGet, "/api/job-roles?"+q.Encode(), "", nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJobRole fetches a single posting by ID.
func (c *Client) GetJobRole(ctx context.Context, id int) (*models.JobRole, error) {
	var role models.JobRole
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/job-roles/%d", id), "", nil, &role)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateJobRole creates a posting. Admin token required.
func (c *Client) CreateJobRole(ctx context.Context, token string, role models.JobRole) (*models.JobRole, error) {
	var created models.JobRole
	err := c.doJSON(ctx, http.MethodPost, "/api/job-roles", token, role, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJobRole replaces a posting. Admin token required.
func (c *Client) UpdateJobRole(ctx context.Context, token string, id int, role models.JobRole) (*models.JobRole, error) {
	var updated models.JobRole
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/job-roles/%d", id), token, role, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJobRole removes a posting. Admin token required.
func (c *Client) DeleteJobRole(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/job-roles/%d", id), token, nil, nil)
}
