package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a normalized backend failure carrying the HTTP status and
// the backend-provided message when one was present.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// StatusCode returns the HTTP status of the failed response
func (e *APIError) StatusCode() int {
	return e.Status
}

// IsNotFound reports whether err is a backend 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsAuthRejected reports whether err is a backend 401
func IsAuthRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
