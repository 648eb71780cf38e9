package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrReservationNotFound is returned when a reservation does not exist or was deleted.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrSlotFull is returned when a party does not fit in the remaining seats of a slot.
	ErrSlotFull = errors.New("not enough seats left in this time slot")
	// ErrInvalidPartySize is returned when the party size is outside the allowed range.
	ErrInvalidPartySize = errors.New("invalid party size")
	// ErrInvalidDate is returned for malformed, past or too distant dates.
	ErrInvalidDate = errors.New("invalid reservation date")
	// ErrInvalidSlot is returned when the time slot is not offered by the venue.
	ErrInvalidSlot = errors.New("invalid time slot")
	// ErrInvalidContact is returned when the contact is neither an email nor a phone number.
	ErrInvalidContact = errors.New("contact must be an email address or a phone number")
	// ErrInvalidName is returned when the guest name is missing or too long.
	ErrInvalidName = errors.New("invalid name")
	// ErrNotesTooLong is returned when reservation notes exceed the limit.
	ErrNotesTooLong = errors.New("notes are too long")
	// ErrWriteTimeout is returned when a write does not finish within the configured timeout.
	ErrWriteTimeout = errors.New("write timed out")
	// ErrInvalidCount is returned for negative headcount values.
	ErrInvalidCount = errors.New("invalid headcount value")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionInvalid is returned when a session token is missing, mismatched or expired.
	ErrSessionInvalid = errors.New("session expired or invalid")
)

// LoginRedirect is where clients are sent when a session is rejected.
const LoginRedirect = "/admin/login"

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Redirect string `json:"redirect,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Redirect   string
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
		Error:    e.Message,
		Code:     e.Code,
		Redirect: e.Redirect,
	}
}

// MapErrorToHTTP maps domain errors, possibly wrapped, to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrReservationNotFound):
		return NewHTTPError(http.StatusNotFound, ErrReservationNotFound.Error(), "RESERVATION_NOT_FOUND")
	case errors.Is(err, ErrSlotFull):
		return NewHTTPError(http.StatusConflict, ErrSlotFull.Error(), "SLOT_FULL")
	case errors.Is(err, ErrInvalidPartySize):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPartySize.Error(), "INVALID_PARTY_SIZE")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidDate.Error(), "INVALID_DATE")
	case errors.Is(err, ErrInvalidSlot):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidSlot.Error(), "INVALID_SLOT")
	case errors.Is(err, ErrInvalidContact):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidContact.Error(), "INVALID_CONTACT")
	case errors.Is(err, ErrInvalidName):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidName.Error(), "INVALID_NAME")
	case errors.Is(err, ErrNotesTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrNotesTooLong.Error(), "NOTES_TOO_LONG")
	case errors.Is(err, ErrInvalidCount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCount.Error(), "INVALID_COUNT")
	case errors.Is(err, ErrWriteTimeout):
		return NewHTTPError(http.StatusGatewayTimeout, ErrWriteTimeout.Error(), "WRITE_TIMEOUT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSessionInvalid):
		httpErr := NewHTTPError(http.StatusUnauthorized, ErrSessionInvalid.Error(), "SESSION_INVALID")
		httpErr.Redirect = LoginRedirect
		return httpErr
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
