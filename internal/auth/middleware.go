package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
)

// sessionContextKey is the echo context key holding the resolved SessionContext.
const sessionContextKey = "session"

// CookieAuth validates the signed session cookie. Absent or tampered cookies
// yield 401 before any handler runs.
func CookieAuth(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  tokens.Secret(),
		TokenLookup: "cookie:" + SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
		},
	})
}

// ResolveSession turns validated cookie claims into a SessionContext, after
// checking the logout revocation list. It must run after CookieAuth.
func ResolveSession(sessions SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
			}
			claims, ok := token.Claims.(*SessionClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
			}
			if revoked, _ := sessions.IsRevoked(c.Request().Context(), claims.ID); revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
			}
			c.Set(sessionContextKey, claims.Context())
			return next(c)
		}
	}
}

// FromContext returns the SessionContext resolved for this request.
func FromContext(c echo.Context) (SessionContext, bool) {
	session, ok := c.Get(sessionContextKey).(SessionContext)
	return session, ok
}
