package middleware

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))
	r.SetHTMLTemplate(template.Must(template.New("error.html").Parse("{{.Status}}: {{.Message}}")))

	// Login stub so tests can establish a session of a given role.
	r.GET("/fake-login/:role", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set(SessionKeyToken, "tok")
		sess.Set(SessionKeyRole, c.Param("role"))
		require.NoError(t, sess.Save())
		c.Status(http.StatusOK)
	})

	r.GET("/admin-only", RequireAuth(models.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "admin content")
	})
	r.GET("/any-user", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "user content")
	})
	return r
}

func login(t *testing.T, r *gin.Engine, role string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fake-login/"+role, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/admin-only", "/any-user"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestRequireAuthRoleGate(t *testing.T) {
	r := newTestRouter(t)
	cookies := login(t, r, models.RoleApplicant)

	// Applicants pass the role-less gate.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any-user", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// But not the admin gate.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthAdminAllowed(t *testing.T) {
	r := newTestRouter(t)
	cookies := login(t, r, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin content", w.Body.String())
}
