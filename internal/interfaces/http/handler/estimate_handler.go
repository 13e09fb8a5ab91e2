package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/render"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/service"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/view"
)

// PageTitle is the title of the calculator page.
const PageTitle = "Asphalt Calculator"

// EstimateHandler serves the calculator page and the estimate endpoints.
type EstimateHandler struct {
	responder
	service     *service.EstimateService
	formatter   view.Formatter
	page        *view.Page
	logger      port.Logger
	maxSections int
}

// NewEstimateHandler creates an EstimateHandler.
//
// Parameters:
//   - svc: the estimate use cases
//   - f: display formatter for the panel and page
//   - logger: request logger
//   - maxSections: upper bound on rectangles per sections request
//   - version: API version stamped into response metadata
//
// Returns:
//   - *EstimateHandler: the handler
//   - error: if the page template cannot be parsed
func NewEstimateHandler(svc *service.EstimateService, f view.Formatter, logger port.Logger, maxSections int, version string) (*EstimateHandler, error) {
	page, err := view.NewPage(f)
	if err != nil {
		return nil, err
	}
	return &EstimateHandler{
		responder:   responder{version: version},
		service:     svc,
		formatter:   f,
		page:        page,
		logger:      logger,
		maxSections: maxSections,
	}, nil
}

// Page renders the calculator. Query parameters prefill the fields.
func (h *EstimateHandler) Page(w http.ResponseWriter, r *http.Request) {
	settings := h.service.Settings()
	fm := form.New(
		form.WithDensity(settings.Density),
		form.WithDefaultThickness(settings.DefaultThickness),
	)

	q := r.URL.Query()
	for _, field := range form.Fields() {
		if q.Has(string(field)) {
			// Fields() only yields known fields
			_ = fm.Set(field, q.Get(string(field)))
		}
	}

	var buf bytes.Buffer
	data := h.page.Data(PageTitle, fm, settings.WasteLowPct, settings.WasteHighPct)
	if err := h.page.Render(&buf, data); err != nil {
		h.logger.WithContext(r.Context()).Error("Failed to render page", "error", err)
		h.fail(w, r, http.StatusInternalServerError, CodeInternal, "Failed to render page")
		return
	}

	render.HTML(w, r, buf.String())
}

// GetEstimate computes an estimate from query parameters.
func (h *EstimateHandler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.EstimateRequest{
		Length:    dto.Number(q.Get("length")),
		Width:     dto.Number(q.Get("width")),
		Thickness: optionalNumber(q, "thickness"),
		Price:     dto.Number(q.Get("price")),
	}
	h.estimate(w, r, req)
}

// PostEstimate computes an estimate from a JSON body.
func (h *EstimateHandler) PostEstimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.estimate(w, r, req)
}

func (h *EstimateHandler) estimate(w http.ResponseWriter, r *http.Request, req dto.EstimateRequest) {
	resp := h.service.Estimate(r.Context(), req)
	resp.Display = h.formatter.Display(resp.Result)
	h.success(w, r, resp)
}

// Sections computes an estimate for an area made of rectangles.
func (h *EstimateHandler) Sections(w http.ResponseWriter, r *http.Request) {
	var req dto.SectionsRequest
	if !h.decode(w, r, &req) {
		return
	}

	details := map[string]any{"max_sections": h.maxSections}
	switch n := len(req.Sections); {
	case n == 0:
		h.validation(w, r, details, dto.ValidationError{Field: "sections", Message: "at least one section is required"})
		return
	case n > h.maxSections:
		h.validation(w, r, details, dto.ValidationError{
			Field:   "sections",
			Message: fmt.Sprintf("at most %d sections are allowed", h.maxSections),
			Value:   n,
		})
		return
	}

	resp := h.service.EstimateSections(r.Context(), h.service.Sections(req), req.Price.Float())
	resp.Display = h.formatter.Display(resp.Total)
	h.success(w, r, resp)
}

// Curve lists the estimate at every thickness slider stop.
func (h *EstimateHandler) Curve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp := h.service.Curve(r.Context(), dto.CurveRequest{
		Length: dto.Number(q.Get("length")),
		Width:  dto.Number(q.Get("width")),
		Price:  dto.Number(q.Get("price")),
	})
	h.success(w, r, resp)
}

// decode reads a JSON body into v, writing the error response on failure.
func (h *EstimateHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := render.DecodeJSON(r.Body, v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.failWithDetails(w, r, http.StatusRequestEntityTooLarge, CodeRequestTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
			map[string]any{"limit_bytes": tooLarge.Limit})
		return false
	}

	h.logger.WithContext(r.Context()).Debug("Invalid request body", "error", err)
	h.fail(w, r, http.StatusBadRequest, CodeInvalidRequest, "Request body must be a JSON object")
	return false
}

// optionalNumber distinguishes an absent parameter from a blank one.
func optionalNumber(q url.Values, key string) *dto.Number {
	if !q.Has(key) {
		return nil
	}
	n := dto.Number(q.Get(key))
	return &n
}
