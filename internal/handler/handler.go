package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
)

// sessionFrom returns the request's SessionContext or a 401 error. Handlers
// behind the session middleware always have one; this guards direct misuse.
func sessionFrom(c echo.Context) (auth.SessionContext, error) {
	session, ok := auth.FromContext(c)
	if !ok {
		return auth.SessionContext{}, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
	}
	return session, nil
}

// pathID parses a numeric id path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// domainError translates service errors into echo HTTP errors carrying the
// user-visible message. Raw storage errors collapse to an opaque 500.
func domainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}

// successResponse is the body for mutations that report only success. The
// owner-scoped no-op contract means success does not imply a row changed.
type successResponse struct {
	Success bool `json:"success"`
}

func success() successResponse {
	return successResponse{Success: true}
}
