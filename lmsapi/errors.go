package lmsapi

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericFailureMessage is surfaced when the upstream error body carries no message.
const GenericFailureMessage = "The operation failed. Please try again."

// APIError is a normalized non-2xx response from the LMS API. The upstream
// error contract is a JSON body with at least a message field and an
// optional per-field errors map.
type APIError struct {
	StatusCode int               `json:"status"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
	Timestamp  string            `json:"timestamp,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lms api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an upstream 404. Callers treat this as a
// normal empty state for optional resources (no enrollment, no review yet).
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an upstream 401, meaning the stored
// access token is no longer valid and the session must be torn down.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsValidation reports whether err is a 4xx carrying per-field errors.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && len(apiErr.Errors) > 0 &&
		apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
