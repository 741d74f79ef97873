package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

func futureDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
}

func validForm() dtos.JobRoleForm {
	return dtos.JobRoleForm{
		RoleName:              "  Software Engineer  ",
		Description:           "Build and run the backend services of the portal.",
		Responsibilities:      "Design, implement and review production Go code.",
		JobSpecLink:           "https://example.com/specs/engineer.pdf",
		Location:              "Belfast NI",
		Capability:            "Engineering",
		Band:                  "Junior",
		ClosingDate:           futureDate(),
		Status:                "Closed",
		NumberOfOpenPositions: "3",
	}
}

func newJobRoleService(t *testing.T, handler http.Handler) *JobRoleService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewJobRoleService(api.New(srv.URL, 5*time.Second))
}

// Whatever status the form carries, new postings reach the backend as
// Open.
func TestCreateForcesStatusOpen(t *testing.T) {
	var forwarded models.JobRole
	svc := newJobRoleService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		forwarded.ID = 1
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(forwarded)
	}))

	form := validForm()
	form.Status = "Closed"
	created, result, err := svc.Create(context.Background(), "tok", form)
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.Equal(t, models.StatusOpen, forwarded.Status)
	assert.Equal(t, models.StatusOpen, created.Status)
}

// String fields are trimmed on the way out, never before validation.
func TestCreateTrimsFields(t *testing.T) {
	var forwarded models.JobRole
	svc := newJobRoleService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		json.NewEncoder(w).Encode(forwarded)
	}))

	_, result, err := svc.Create(context.Background(), "tok", validForm())
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.Equal(t, "Software Engineer", forwarded.RoleName)
	assert.Equal(t, 3, forwarded.NumberOfOpenPositions)
}

// An invalid form never reaches the backend.
func TestCreateStopsOnValidationFailure(t *testing.T) {
	backendHit := false
	svc := newJobRoleService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHit = true
	}))

	form := validForm()
	form.Band = "Intergalactic"
	created, result, err := svc.Create(context.Background(), "tok", form)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Nil(t, created)
	assert.False(t, backendHit, "backend must not be called for invalid input")
}

// Updates keep the submitted status and tolerate historical closing
// dates.
func TestUpdateKeepsStatusAndPastDate(t *testing.T) {
	var forwarded models.JobRole
	svc := newJobRoleService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/job-roles/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		json.NewEncoder(w).Encode(forwarded)
	}))

	form := validForm()
	form.ClosingDate = "2020-01-01"
	form.Status = models.StatusClosed
	_, result, err := svc.Update(context.Background(), "tok", 7, form)
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.Equal(t, models.StatusClosed, forwarded.Status)
	assert.Equal(t, "2020-01-01", forwarded.ClosingDate)
}

func TestListBuildsWindow(t *testing.T) {
	svc := newJobRoleService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.JobRolePage{
			Roles:      []models.JobRole{{ID: 1, RoleName: "Engineer"}},
			Page:       2,
			TotalPages: 4,
			Total:      31,
		})
	}))

	view, err := svc.List(context.Background(), "/job-roles",
		dtos.ListQuery{Page: 2, Limit: 10, Band: "Mid"})
	require.NoError(t, err)

	assert.Len(t, view.Window.Pages, 4)
	require.NotNil(t, view.Window.Previous)
	assert.Equal(t, "/job-roles?page=1&limit=10&band=Mid", *view.Window.Previous)
	require.NotNil(t, view.Window.Next)
	assert.Equal(t, "/job-roles?page=3&limit=10&band=Mid", *view.Window.Next)
}
