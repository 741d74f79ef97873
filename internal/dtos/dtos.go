// Package dtos carries the request and view shapes exchanged between
// the handlers, the templates and the service layer.
package dtos

import (
	"jobportal/internal/models"
	"jobportal/internal/pagination"
)

// ListQuery binds the listing page's query string. Filters are free-form
// strings here; the backend treats unknown filter values as matching
// nothing, so only page/limit need bounds.
type ListQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
	Search     string `form:"search"`
	Capability string `form:"capability"`
	Location   string `form:"location"`
	Band       string `form:"band"`
	Status     string `form:"status"`
}

// Params lifts the filter fields into the value object the pagination
// builders and the API client share.
func (q ListQuery) Params() models.SearchParams {
	return models.SearchParams{
		Search:     q.Search,
		Capability: q.Capability,
		Location:   q.Location,
		Band:       q.Band,
		Status:     q.Status,
	}
}

// JobRoleForm is the admin create/edit form body, raw strings only.
type JobRoleForm struct {
	RoleName              string `form:"roleName"`
	Description           string `form:"description"`
	Responsibilities      string `form:"responsibilities"`
	JobSpecLink           string `form:"jobSpecLink"`
	Location              string `form:"location"`
	Capability            string `form:"capability"`
	Band                  string `form:"band"`
	ClosingDate           string `form:"closingDate"`
	Status                string `form:"status"`
	NumberOfOpenPositions string `form:"numberOfOpenPositions"`
}

// ApplicationForm is the application form body; the CV file rides
// alongside it in the multipart request.
type ApplicationForm struct {
	ApplicantName string `form:"applicantName"`
	Email         string `form:"applicantEmail"`
	CoverLetter   string `form:"coverLetter"`
}

// LoginForm is the login form body.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// RegisterForm is the registration form body.
type RegisterForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Forename string `form:"forename"`
	Surname  string `form:"surname"`
}

// JobRoleListView is everything the listing template needs.
type JobRoleListView struct {
	Roles      []models.JobRole
	Window     pagination.Window
	Query      ListQuery
	Total      int
	TotalPages int
}
