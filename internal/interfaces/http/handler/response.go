// Package handler contains the HTTP handlers and router of the estimator API.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

// Error codes returned in the API envelope.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeRequestTooLarge  = "REQUEST_TOO_LARGE"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
)

// responder writes API envelopes stamped with request metadata.
type responder struct {
	version string
}

func (rs responder) meta(r *http.Request) *dto.ResponseMeta {
	return &dto.ResponseMeta{
		RequestID: logger.RequestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   rs.version,
	}
}

func respond[T any](rs responder, w http.ResponseWriter, r *http.Request, status int, resp dto.APIResponse[T]) {
	render.Status(r, status)
	render.JSON(w, r, resp.WithMeta(rs.meta(r)))
}

func (rs responder) success(w http.ResponseWriter, r *http.Request, data any) {
	respond(rs, w, r, http.StatusOK, dto.NewSuccessResponse(data))
}

func (rs responder) fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	rs.failWithDetails(w, r, status, code, message, nil)
}

func (rs responder) failWithDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]any) {
	respond(rs, w, r, status, dto.NewErrorResponse[any](code, message).WithDetails(details))
}

func (rs responder) validation(w http.ResponseWriter, r *http.Request, details map[string]any, errs ...dto.ValidationError) {
	respond(rs, w, r, http.StatusBadRequest, dto.NewValidationErrorResponse[any](errs).WithDetails(details))
}

// NotFound handles 404 responses.
func (rs responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.fail(w, r, http.StatusNotFound, CodeNotFound, "The requested resource was not found")
}

// MethodNotAllowed handles 405 responses.
func (rs responder) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	rs.fail(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "The requested method is not allowed for this resource")
}
