package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/api"
	"jobportal/internal/models"
	"jobportal/internal/services"
)

// Minimal stand-ins for the real templates; the handler tests only care
// about status codes and the data that reaches the template.
const testTemplates = `
{{define "job-list.html"}}list:{{len .View.Roles}}:{{.View.Total}}{{end}}
{{define "job-detail.html"}}detail:{{.JobRole.RoleName}}:{{.DescriptionHTML}}{{end}}
{{define "job-form.html"}}form:{{.Error}}:{{.Form.RoleName}}{{end}}
{{define "error.html"}}error:{{.Status}}:{{.Message}}{{end}}
`

func newTestHandler(t *testing.T, backend http.Handler) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	h := NewJobRoleHandler(services.NewJobRoleService(api.New(srv.URL, 5*time.Second)))
	r.GET("/job-roles", h.List)
	r.GET("/job-roles/:id", h.Detail)
	r.POST("/admin/job-roles", h.Create)
	return r
}

func TestListRendersRoles(t *testing.T) {
	r := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(api.JobRolePage{
			Roles:      []models.JobRole{{ID: 1}, {ID: 2}},
			Page:       1,
			TotalPages: 1,
			Total:      2,
		})
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/job-roles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list:2:2", w.Body.String())
}

func TestDetailRejectsBadID(t *testing.T) {
	r := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("backend must not be called for a malformed ID")
	}))

	for _, id := range []string{"0", "-1", "1.5", "1e5", "abc"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/job-roles/"+id, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)
	}
}

func TestDetailEscapesBackendText(t *testing.T) {
	r := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(models.JobRole{
			ID:          7,
			RoleName:    "Engineer",
			Description: "<script>alert(1)</script>\nsecond line",
		})
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/job-roles/7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "<br>")
}

func TestCreateReRendersInvalidForm(t *testing.T) {
	r := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("backend must not be called for an invalid form")
	}))

	form := url.Values{}
	form.Set("roleName", "Engineer") // everything else missing

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/job-roles", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The generic presence message plus the echoed role name.
	assert.Equal(t, "form:All fields are required:Engineer", w.Body.String())
}

func TestDetailBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	h := NewJobRoleHandler(services.NewJobRoleService(api.New(srv.URL, time.Second)))
	r.GET("/job-roles/:id", h.Detail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/job-roles/1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
