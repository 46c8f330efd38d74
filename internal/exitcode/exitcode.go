package exitcode

import (
	stderrors "errors"
	"net/http"
	"os"
	"strings"

	"github.com/vedicvision/vvadmin/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// ValidationError indicates a record or schema failed local validation
	ValidationError = 4

	// NotFound indicates the backend reported a missing resource
	NotFound = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// StatusError is implemented by errors that carry an HTTP status.
type StatusError interface {
	error
	StatusCode() int
}

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var statusErr StatusError
	if stderrors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode() == http.StatusUnauthorized,
			statusErr.StatusCode() == http.StatusForbidden:
			return AuthError
		case statusErr.StatusCode() == http.StatusNotFound:
			return NotFound
		case statusErr.StatusCode() >= 500:
			return NetworkError
		}
	}

	var adminErr *errors.AdminError
	if stderrors.As(err, &adminErr) {
		switch {
		case strings.HasPrefix(string(adminErr.Code), "AUTH-"):
			return AuthError
		case strings.HasPrefix(string(adminErr.Code), "VALIDATE-"):
			return ValidationError
		case adminErr.Code == errors.ErrCodeAPINotFound:
			return NotFound
		case adminErr.Code == errors.ErrCodeAPIRequest,
			adminErr.Code == errors.ErrCodeAPIServerError:
			return NetworkError
		}
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "access denied") {
		return AuthError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "required flag") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication or authorization error"
	case ValidationError:
		return "Validation error"
	case NotFound:
		return "Resource not found"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
