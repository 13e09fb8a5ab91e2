package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusOK        = "ok"
	StatusFailed    = "failed"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler; uptime counts from now.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, startTime: time.Now()}
}

// Health returns the health check response.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	check := checkEstimator()

	resp := dto.HealthResponse{
		Status:  StatusHealthy,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Checks:  map[string]dto.HealthCheckResult{"estimator": check},
	}

	status := http.StatusOK
	if check.Status != StatusOK {
		resp.Status = StatusUnhealthy
		status = http.StatusServiceUnavailable
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// checkEstimator runs the reference driveway through the estimator.
func checkEstimator() dto.HealthCheckResult {
	start := time.Now()
	res := estimator.Estimate(50, 20, 3, estimator.DefaultDensity, 80)

	check := dto.HealthCheckResult{
		Status:       StatusOK,
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if res.Tons != 18.13 || res.Cost != 1450 {
		check.Status = StatusFailed
		check.Message = "reference estimate mismatch"
	}
	return check
}
