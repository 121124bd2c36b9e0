package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// NetworkUnavailableError means the upstream API gave no response at all.
type NetworkUnavailableError struct {
	Message string
	Cause   error
}

func (e *NetworkUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *NetworkUnavailableError) Unwrap() error {
	return e.Cause
}

func NewNetworkUnavailableError(message string, cause error) *NetworkUnavailableError {
	return &NetworkUnavailableError{
		Message: message,
		Cause:   cause,
	}
}

func IsNetworkUnavailableError(err error) (*NetworkUnavailableError, bool) {
	if ne, ok := err.(*NetworkUnavailableError); ok {
		return ne, true
	}
	return nil, false
}

// UnauthorizedError maps upstream 401 responses (expired session).
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func IsUnauthorizedError(err error) (*UnauthorizedError, bool) {
	if ue, ok := err.(*UnauthorizedError); ok {
		return ue, true
	}
	return nil, false
}

// ForbiddenError maps upstream 403 responses (role mismatch).
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func IsForbiddenError(err error) (*ForbiddenError, bool) {
	if fe, ok := err.(*ForbiddenError); ok {
		return fe, true
	}
	return nil, false
}

// NotFoundError maps upstream 404 responses (referenced entity missing).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if ne, ok := err.(*NotFoundError); ok {
		return ne, true
	}
	return nil, false
}

// ServerError maps upstream 5xx responses and malformed envelopes.
type ServerError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e *ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Cause
}

func NewServerError(message string, statusCode int, cause error) *ServerError {
	return &ServerError{
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

func IsServerError(err error) (*ServerError, bool) {
	if se, ok := err.(*ServerError); ok {
		return se, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}

// UserMessage extracts the message to surface in a notification: the upstream
// message when present, else the generic fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	switch e := err.(type) {
	case *ValidationError:
		if e.Message != "" {
			return e.Message
		}
	case *UnauthorizedError:
		if e.Message != "" {
			return e.Message
		}
	case *ForbiddenError:
		if e.Message != "" {
			return e.Message
		}
	case *NotFoundError:
		if e.Message != "" {
			return e.Message
		}
	case *ServerError:
		if e.Message != "" {
			return e.Message
		}
	}
	return fallback
}
