package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/service"
)

// AuthHandler handles the form-encoded login, registration and logout flows.
// These endpoints redirect rather than answering JSON; failures carry a
// user-visible message back to the form via the error query parameter.
type AuthHandler struct {
	authService service.AuthService
	tokens      *auth.TokenService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, _, role, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		return redirectWithError(c, "/login", apperrors.ErrInvalidCredentials.Error())
	}

	setSessionCookie(c, token)
	if role.IsAdmin() {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 6 characters)"
// @Success 303
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	if _, err := h.authService.Register(c.Request().Context(), username, email, password); err != nil {
		return redirectWithError(c, "/register", apperrors.MapErrorToHTTP(err).Message)
	}
	return c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// Logout godoc
// @Summary Log out and invalidate the session
// @Tags auth
// @Success 303
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
		if claims, err := h.tokens.Validate(cookie.Value); err == nil {
			_ = h.authService.Logout(c.Request().Context(), claims)
		}
	}
	clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func redirectWithError(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(message))
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
