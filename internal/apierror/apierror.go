package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrConflict       ErrorCode = "CONFLICT"
	ErrBadRequest     ErrorCode = "BAD_REQUEST"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// TimeoutError is returned when an outbound call exceeds its deadline.
type TimeoutError struct {
	Operation string
	Err       error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out", e.Operation)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ExternalServiceError carries the status and body of a non-2xx response.
type ExternalServiceError struct {
	Status int
	Body   string
}

func (e *ExternalServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("external service responded with status %d", e.Status)
	}
	return fmt.Sprintf("external service responded with status %d: %s", e.Status, e.Body)
}

// UnexpectedResponseShapeError means the body parsed but did not have the
// expected structure.
type UnexpectedResponseShapeError struct {
	Reason string
	Body   string
}

func (e *UnexpectedResponseShapeError) Error() string {
	return "unexpected response shape: " + e.Reason
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func MapErrorToHTTPStatus(err error) int {
	var timeoutErr *TimeoutError
	var externalErr *ExternalServiceError
	var shapeErr *UnexpectedResponseShapeError
	var validationErr *ValidationError

	switch {
	case errors.As(err, &timeoutErr):
		return http.StatusRequestTimeout
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &externalErr):
		if externalErr.Status >= 400 && externalErr.Status < 500 {
			return externalErr.Status
		}
		return http.StatusBadGateway
	case errors.As(err, &shapeErr):
		return http.StatusBadGateway
	}

	var apiErr APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrConflict:
			return http.StatusConflict
		case ErrInvalidInput, ErrBadRequest:
			return http.StatusBadRequest
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
