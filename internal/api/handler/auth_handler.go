package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/api/flash"
	"github.com/cinerate/rating-system/internal/api/metrics"
	"github.com/cinerate/rating-system/internal/api/middleware"
	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

const defaultSessionTTL = time.Hour

// AuthHandler serves the login and logout routes.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	secret   string
	ttl      time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, secret string, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthHandler{auth: auth, sessions: sessions, secret: secret, ttl: ttl}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginView{page: newPage(c, "Login")})
}

// Login handles POST /login. On success it establishes the session and
// redirects by role: admins to movie management, viewers to the ratings
// view. On failure the form is re-rendered and no session state changes.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginFailed(c, form, "Invalid credentials")
	}
	if err := c.Validate(&form); err != nil {
		return h.loginFailed(c, form, err.Error())
	}

	user, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return h.loginFailed(c, form, "Invalid credentials")
		}
		return err
	}

	id := middleware.NewSessionID()
	if err := h.sessions.Set(c.Request().Context(), id, domain.Session{User: user.Username, Role: user.Role}); err != nil {
		return err
	}
	cookie, err := middleware.NewSessionCookie(id, h.secret, h.ttl)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	flash.Set(c, flash.Success, "Login successful!")

	if user.Role == domain.RoleAdmin {
		return c.Redirect(http.StatusSeeOther, "/manage")
	}
	return c.Redirect(http.StatusSeeOther, "/view")
}

// Logout handles GET /logout: clears the server-side session and expires
// the cookie. Logging out twice ends in the same state as once.
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, ok := c.Get(middleware.CtxSessionID).(string); ok && id != "" {
		if err := h.sessions.Clear(c.Request().Context(), id); err != nil {
			return err
		}
	}
	c.SetCookie(middleware.ExpiredSessionCookie())
	flash.Set(c, flash.Info, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context, form loginForm, msg string) error {
	view := loginView{page: newPage(c, "Login"), Error: msg, Username: form.Username}
	return c.Render(http.StatusOK, "login", view)
}
