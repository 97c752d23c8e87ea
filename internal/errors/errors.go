package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned on a failed login. Deliberately vague:
	// it never reveals whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidAdminCode is returned when an admin signup carries a code
	// outside the configured allow-list.
	ErrInvalidAdminCode = errors.New("invalid admin code")
	// ErrPermissionDenied is returned when the actor's role or ownership does
	// not authorize the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrProfileExists is returned when a caregiver who already has a profile
	// tries to create another.
	ErrProfileExists = errors.New("caregiver profile already exists")
	// ErrProfileNotFound is returned when a caregiver has no profile yet but
	// the operation requires one.
	ErrProfileNotFound = errors.New("caregiver profile not found")
	// ErrElderlyNotFound is returned when an elderly profile does not exist or
	// is not owned by the caller. Both cases map to the same error so a crafted
	// identifier leaks nothing about other families' records.
	ErrElderlyNotFound = errors.New("elderly profile not found")
	// ErrScheduleNotFound is returned when dereferencing an unknown schedule.
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrAlreadyConfirmed is returned when a caregiver confirms the same
	// schedule twice.
	ErrAlreadyConfirmed = errors.New("schedule already confirmed by this caregiver")
	// ErrRequestNotFound is returned when dereferencing an unknown request.
	ErrRequestNotFound = errors.New("caregiver request not found")
	// ErrRequestResolved is returned when accepting or declining a request
	// that already left the pending state.
	ErrRequestResolved = errors.New("request already resolved")
	// ErrInvalidTimeWindow is returned when a schedule's end time is not
	// strictly after its start time.
	ErrInvalidTimeWindow = errors.New("end time must be after start time")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
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
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidAdminCode):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ADMIN_CODE")
	case errors.Is(err, ErrPermissionDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PERMISSION_DENIED")
	case errors.Is(err, ErrProfileExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFILE_EXISTS")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrElderlyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ELDERLY_NOT_FOUND")
	case errors.Is(err, ErrScheduleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SCHEDULE_NOT_FOUND")
	case errors.Is(err, ErrAlreadyConfirmed):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_CONFIRMED")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrRequestResolved):
		return NewHTTPError(http.StatusConflict, err.Error(), "REQUEST_RESOLVED")
	case errors.Is(err, ErrInvalidTimeWindow):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TIME_WINDOW")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
