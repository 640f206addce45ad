package desksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeValidation     = "validation_error"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeForbidden      = "forbidden"
	ErrorCodeRateLimited    = "rate_limit_exceeded"
	ErrorCodeServerError    = "server_error"
	ErrorCodeSelfRoleChange = "self_role_change"
	ErrorCodeNotAvailable   = "not_available"
)

// ErrNotSignedIn is returned by workspace mutations before a sign-in event.
var ErrNotSignedIn = errors.New("desksdk: not signed in")

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// Details holds field errors for validation failures
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// ValidationDetails returns the field errors carried by err, if any.
func ValidationDetails(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Details
	}
	return nil
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns an error body into an *APIError. It understands
// both the plain error shape and the validation error shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var valErr ValidationErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        valErr.Code,
			Description: valErr.Message,
			Details:     valErr.Details,
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// Errors returned by Workspace before any request is sent.
var (
	ErrAdminRequired  = errors.New("desksdk: admin role required")
	ErrSelfRoleChange = errors.New("desksdk: cannot change your own role")
)

// validationError mirrors the service's 400 response for forms rejected
// locally.
func validationError(details map[string]string) error {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "One or more fields are invalid",
		Details:     details,
	}
}
