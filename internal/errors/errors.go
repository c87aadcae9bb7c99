package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthFailed is returned when the credential lookup itself fails.
	ErrAuthFailed = errors.New("Authentication failed")
	// ErrUserNotFound is returned when no user matches the email.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("Invalid password")
	// ErrInvalidToken is returned when a session token cannot be decoded.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrQueryFailed is returned when any downstream data fetch fails.
	ErrQueryFailed = errors.New("query failed")
	// ErrStoreNotFound is returned when a store id does not exist.
	ErrStoreNotFound = errors.New("store not found")
	// ErrInvalidStore is returned when a store id path parameter cannot be parsed.
	ErrInvalidStore = errors.New("invalid store id")
	// ErrInvalidRange is returned when a date range is malformed or inverted.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrForbidden is returned when the session role may not perform the operation.
	ErrForbidden = errors.New("forbidden")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Debug string `json:"debug,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Debug      string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
		Debug: e.Debug,
	}
}

// QueryError records which table a failed fetch was reading. It unwraps to
// both ErrQueryFailed and the driver error.
type QueryError struct {
	Table string
	Cause error
}

// NewQueryError wraps cause as a failed read of table.
func NewQueryError(table string, cause error) *QueryError {
	return &QueryError{Table: table, Cause: cause}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Table, e.Cause)
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrQueryFailed, e.Cause}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var qe *QueryError
	switch {
	case errors.As(err, &qe):
		httpErr := NewHTTPError(http.StatusInternalServerError, "Error fetching data: "+qe.Cause.Error(), "QUERY_FAILED")
		httpErr.Debug = qe.Error()
		return httpErr
	case errors.Is(err, ErrQueryFailed):
		return NewHTTPError(http.StatusInternalServerError, "Error fetching data", "QUERY_FAILED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidPassword.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrAuthFailed):
		return NewHTTPError(http.StatusUnauthorized, ErrAuthFailed.Error(), "AUTH_FAILED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrStoreNotFound):
		return NewHTTPError(http.StatusNotFound, ErrStoreNotFound.Error(), "STORE_NOT_FOUND")
	case errors.Is(err, ErrInvalidStore):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidStore.Error(), "INVALID_STORE")
	case errors.Is(err, ErrInvalidRange):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidRange.Error(), "INVALID_RANGE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
