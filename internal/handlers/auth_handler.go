package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/middleware"
	"jobportal/internal/services"
)

// AuthHandler renders the login/registration pages and manages the
// session around the backend's token.
type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// LoginForm is GET /login.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Form": dtos.LoginForm{}})
}

// Login is POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dtos.LoginForm
	_ = c.ShouldBind(&form)

	backendSession, result, err := h.Auth.Login(c.Request.Context(), form)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Form":   dtos.LoginForm{Email: form.Email},
			"Errors": result.Errors,
		})
		return
	}
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Form":   dtos.LoginForm{Email: form.Email},
				"Errors": []string{"Invalid email or password"},
			})
			return
		}
		renderBackendError(c, err)
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionKeyToken, backendSession.Token)
	sess.Set(middleware.SessionKeyRole, backendSession.Role)
	sess.Set(middleware.SessionKeyEmail, form.Email)
	if err := sess.Save(); err != nil {
		renderBackendError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/job-roles")
}

// RegisterForm is GET /register.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Form": dtos.RegisterForm{}})
}

// Register is POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dtos.RegisterForm
	_ = c.ShouldBind(&form)

	// Echo everything except the password back on failure.
	echo := dtos.RegisterForm{Email: form.Email, Forename: form.Forename, Surname: form.Surname}

	result, err := h.Auth.Register(c.Request.Context(), form)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Form":   echo,
			"Errors": result.Errors,
		})
		return
	}
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"Form":   echo,
				"Errors": []string{"An account with that email already exists"},
			})
			return
		}
		renderBackendError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Logout is POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/job-roles")
}
