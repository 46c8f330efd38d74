package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn  ErrorCode = "AUTH-001"
	ErrCodeAuthRejected     ErrorCode = "AUTH-002"
	ErrCodeAuthNotAdmin     ErrorCode = "AUTH-003"
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-004"
	ErrCodeAuthCacheInvalid ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPINotFound    ErrorCode = "API-003"
	ErrCodeAPIServerError ErrorCode = "API-004"

	// Validation errors (VALIDATE-001 to VALIDATE-099)
	ErrCodeValidateField   ErrorCode = "VALIDATE-001"
	ErrCodeValidateOptions ErrorCode = "VALIDATE-002"
	ErrCodeValidateRecord  ErrorCode = "VALIDATE-003"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound   ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG-002"
	ErrCodeConfigKeyUnknown ErrorCode = "CONFIG-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
	ErrCodeFileMarshal     ErrorCode = "IO-005"
)

// AdminError represents an enhanced error with code, suggestions, and cause
type AdminError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *AdminError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *AdminError) Unwrap() error {
	return e.Cause
}

// New creates a new AdminError
func New(code ErrorCode, message string) *AdminError {
	return &AdminError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AdminError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *AdminError {
	return &AdminError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *AdminError) WithSuggestion(suggestion string) *AdminError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *AdminError) WithSuggestions(suggestions ...string) *AdminError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *AdminError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'vvadmin login' to authenticate").
		WithSuggestion("Check the backend URL with 'vvadmin config get api_url'")
}

// NewAccessDeniedError creates the authorization error for non-admin identities.
// The backend authenticated the credentials but the account lacks the admin role.
func NewAccessDeniedError() *AdminError {
	return New(ErrCodeAuthNotAdmin, "Access denied. Admin privileges required.").
		WithSuggestion("Log in with an account that has the admin role")
}

// NewAuthRejectedError creates an error for protected calls the backend refused
func NewAuthRejectedError() *AdminError {
	return New(ErrCodeAuthRejected, "session expired or rejected by the backend").
		WithSuggestion("Run 'vvadmin login' to re-authenticate")
}

// NewConfigKeyUnknownError creates an error for an unrecognized config key
func NewConfigKeyUnknownError(key string) *AdminError {
	return New(ErrCodeConfigKeyUnknown, fmt.Sprintf("unknown configuration key: %s", key)).
		WithSuggestion("Run 'vvadmin config view' to see available keys")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *AdminError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
