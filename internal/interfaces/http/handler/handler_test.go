package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/bootstrap"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/metrics"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/http/middleware"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

func newServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.RateLimit.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	log := bootstrap.PortLogger(logger.NewNop())
	prom := metrics.NewPrometheus(cfg.Metrics.Namespace)

	svc, err := bootstrap.NewEstimateService(cfg, log, prom)
	require.NoError(t, err)

	estimates, err := NewEstimateHandler(svc, bootstrap.Formatter(cfg.Estimator), log, cfg.Estimator.MaxSections, "test")
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(RouterConfig{
		Config:    cfg,
		Version:   "test",
		Logger:    log,
		Estimates: estimates,
		Health:    NewHealthHandler("test"),
		Metrics:   prom,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func decode[T any](t *testing.T, resp *http.Response) dto.APIResponse[T] {
	t.Helper()
	defer resp.Body.Close()

	var out dto.APIResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, StatusHealthy, health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, StatusOK, health.Checks["estimator"].Status)
}

func TestGetEstimate(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/estimates?length=50&width=20&thickness=3&price=80")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(t, "test", resp.Header.Get("X-API-Version"))

	body := decode[dto.EstimateResponse](t, resp)
	require.True(t, body.Success)
	assert.Equal(t, 18.13, body.Data.Result.Tons)
	assert.Equal(t, 1450.0, body.Data.Result.Cost)
	require.NotNil(t, body.Data.Display)
	assert.Equal(t, "18.13 Tons", body.Data.Display.Tons)
	assert.Equal(t, "$1,450", body.Data.Display.Cost)
	assert.True(t, body.Data.Display.ShowCost)
	require.NotNil(t, body.Meta)
	assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), body.Meta.RequestID)
}

func TestGetEstimate_ThicknessDefaults(t *testing.T) {
	srv := newServer(t, nil)

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"absent uses default", "length=50&width=20", 18.13},
		{"blank is zero", "length=50&width=20&thickness=", 0},
		{"junk is zero", "length=50&width=20&thickness=abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/v1/estimates?" + tt.query)
			require.NoError(t, err)
			body := decode[dto.EstimateResponse](t, resp)
			assert.Equal(t, tt.want, body.Data.Result.Tons)
			assert.False(t, body.Data.Display.ShowCost)
		})
	}
}

func TestPostEstimate(t *testing.T) {
	srv := newServer(t, nil)

	tests := []struct {
		name     string
		body     string
		wantTons float64
		wantCost float64
	}{
		{"numbers", `{"length":50,"width":20,"thickness":3,"price":80}`, 18.13, 1450},
		{"strings", `{"length":"50","width":"20","thickness":"3","price":"80"}`, 18.13, 1450},
		{"nulls coerce to zero", `{"length":50,"width":null,"thickness":3,"price":80}`, 0, 0},
		{"null thickness is zero", `{"length":50,"width":20,"thickness":null,"price":80}`, 0, 0},
		{"absent thickness uses default", `{"length":50,"width":20,"price":80}`, 18.13, 1450},
		{"negative clamps to zero", `{"length":-50,"width":20,"price":80}`, 0, 0},
		{"empty object", `{}`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/estimates", tt.body)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			body := decode[dto.EstimateResponse](t, resp)
			assert.Equal(t, tt.wantTons, body.Data.Result.Tons)
			assert.Equal(t, tt.wantCost, body.Data.Result.Cost)
		})
	}
}

func TestPostEstimate_InvalidBody(t *testing.T) {
	srv := newServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/estimates", "length=50")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[any](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, CodeInvalidRequest, body.Error.Code)
}

func TestPostEstimate_TooLarge(t *testing.T) {
	srv := newServer(t, func(cfg *config.Config) { cfg.Server.MaxRequestSize = 16 })

	resp := postJSON(t, srv.URL+"/api/v1/estimates", `{"length":50,"width":20,"thickness":3,"price":80}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	body := decode[any](t, resp)
	assert.Equal(t, CodeRequestTooLarge, body.Error.Code)
	assert.Equal(t, map[string]any{"limit_bytes": 16.0}, body.Error.Details)
}

func TestPostEstimate_WrongContentType(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/v1/estimates", "text/plain", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, middleware.CodeUnsupportedMediaType, decode[any](t, resp).Error.Code)
}

func TestSections(t *testing.T) {
	srv := newServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/estimates/sections", `{
		"sections": [
			{"name": "driveway", "length": 50, "width": 20, "thickness": 3},
			{"length": "10", "width": "10"}
		],
		"price": 80
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.SectionsResponse](t, resp)
	require.Len(t, body.Data.Sections, 2)
	assert.Equal(t, "driveway", body.Data.Sections[0].Name)
	assert.Equal(t, "section 2", body.Data.Sections[1].Name)
	assert.Equal(t, 18.13, body.Data.Sections[0].Tons)
	assert.Equal(t, 3.0, body.Data.Sections[1].ThicknessIn)
	assert.Equal(t, 19.94, body.Data.Total.Tons)
	assert.Equal(t, "19.94 Tons", body.Data.Display.Tons)
}

func TestSections_Validation(t *testing.T) {
	srv := newServer(t, func(cfg *config.Config) { cfg.Estimator.MaxSections = 1 })

	tests := []struct {
		name string
		body string
	}{
		{"none", `{"sections": [], "price": 80}`},
		{"too many", `{"sections": [{"length": 1, "width": 1}, {"length": 2, "width": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/estimates/sections", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decode[any](t, resp)
			require.NotNil(t, body.Error)
			assert.Equal(t, dto.CodeValidation, body.Error.Code)
			require.Len(t, body.Error.ValidationErrors, 1)
			assert.Equal(t, "sections", body.Error.ValidationErrors[0].Field)
			assert.Equal(t, 1.0, body.Error.Details["max_sections"])
		})
	}
}

func TestCurve(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/estimates/curve?length=50&width=20&price=80")
	require.NoError(t, err)

	body := decode[dto.CurveResponse](t, resp)
	require.Len(t, body.Data.Points, 19)
	assert.Equal(t, 1.0, body.Data.Points[0].ThicknessIn)
	assert.Equal(t, 18.13, body.Data.Points[4].Tons)
	assert.Equal(t, 10.0, body.Data.Points[18].ThicknessIn)
}

func TestPage(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/?length=50&width=20&price=80")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "18.13 Tons")
	assert.Contains(t, string(html), "$1,450")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/quotes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, CodeNotFound, decode[any](t, resp).Error.Code)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/estimates", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, CodeMethodNotAllowed, decode[any](t, resp).Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/estimates?length=50&width=20")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "asphalt_estimates_total")
	assert.Contains(t, string(text), `asphalt_http_requests_total{code="200",method="GET",path="/api/v1/estimates`)
}
