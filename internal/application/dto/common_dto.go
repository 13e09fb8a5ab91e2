// Package dto contains the request and response shapes of the estimator API.
package dto

// CodeValidation is the error code of a request whose fields were rejected.
const CodeValidation = "VALIDATION_ERROR"

// APIResponse is the envelope around every JSON API response.
// Exactly one of Data or Error is meaningful, as reported by Success.
type APIResponse[T any] struct {
	Success bool          `json:"success"`
	Data    T             `json:"data,omitempty"`
	Error   *APIError     `json:"error,omitempty"`
	Meta    *ResponseMeta `json:"meta,omitempty"`
}

// APIError describes why a request failed.
type APIError struct {
	// Code is a stable, machine-readable identifier such as REQUEST_TOO_LARGE.
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries the limits a request ran into, e.g. limit_bytes.
	Details map[string]any `json:"details,omitempty"`

	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
}

// ValidationError names one rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ResponseMeta ties a response to its request.
type ResponseMeta struct {
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

// NewErrorResponse builds a failed envelope.
//
// Parameters:
//   - code: machine-readable error code
//   - message: human-readable explanation
//
// Returns:
//   - APIResponse[T]: the envelope, without metadata
func NewErrorResponse[T any](code, message string) APIResponse[T] {
	return APIResponse[T]{
		Error: &APIError{Code: code, Message: message},
	}
}

// NewValidationErrorResponse builds a CodeValidation envelope listing the
// rejected fields.
func NewValidationErrorResponse[T any](errs []ValidationError) APIResponse[T] {
	resp := NewErrorResponse[T](CodeValidation, "Request validation failed")
	resp.Error.ValidationErrors = errs
	return resp
}

// WithMeta returns a copy of the response carrying meta.
func (r APIResponse[T]) WithMeta(meta *ResponseMeta) APIResponse[T] {
	r.Meta = meta
	return r
}

// WithDetails returns a copy of the response whose error carries details.
// It is a no-op on a successful response.
func (r APIResponse[T]) WithDetails(details map[string]any) APIResponse[T] {
	if r.Error == nil {
		return r
	}
	e := *r.Error
	e.Details = details
	r.Error = &e
	return r
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	// Status is healthy or unhealthy.
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	// Checks maps a component name to its self-test.
	Checks map[string]HealthCheckResult `json:"checks"`
}

// HealthCheckResult is the outcome of one component self-test.
type HealthCheckResult struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime int64  `json:"response_time_ms,omitempty"`
}
