package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid session accompanies a request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the caller is authenticated but lacks the required role.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound is returned when a resource does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDuplicateUser is returned when a username or email is already registered.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrSelfDelete is returned when an admin tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrCorruptConversation is returned when a stored transcript does not decode.
	ErrCorruptConversation = errors.New("invalid conversation data")
)

// ValidationError carries a user-visible message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ErrorResponse is the JSON error body. Every error leaving the API uses this
// shape; storage-engine error text never reaches the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError pairs a status code with a user-visible message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return NewHTTPError(http.StatusBadRequest, validation.Message)
	}
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, ErrDuplicateUser.Error())
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusBadRequest, ErrSelfDelete.Error())
	case errors.Is(err, ErrCorruptConversation):
		return NewHTTPError(http.StatusInternalServerError, ErrCorruptConversation.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
