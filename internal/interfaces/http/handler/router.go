package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/metrics"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/http/middleware"
)

// RouterConfig carries the dependencies of NewRouter.
type RouterConfig struct {
	Config  *config.Config
	Version string
	Logger  port.Logger

	Estimates *EstimateHandler
	Health    *HealthHandler

	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Prometheus
}

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(rc RouterConfig) chi.Router {
	cfg := rc.Config
	rs := responder{version: rc.Version}

	r := chi.NewRouter()

	// ============================================================================
	// Middleware stack
	// ============================================================================
	// Order matters! Middleware is executed in the order added.

	// 1. Real IP extraction (for rate limiting and logging)
	r.Use(middleware.RealIP)

	// 2. Request ID generation/propagation
	r.Use(middleware.RequestID)

	// 3. Logging (after Request ID so it's included in logs)
	r.Use(middleware.Logger(rc.Logger))

	// 4. Panic recovery
	r.Use(middleware.Recoverer(rc.Logger))

	// 5. Request timeout
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 6. CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-API-Version"},
		MaxAge:         300,
	}))

	// 7. Rate limiting
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			KeyFunc:           middleware.ClientIP,
		}))
	}

	// 8. Security headers
	r.Use(middleware.SecureHeaders)

	// 9. API version header
	r.Use(middleware.APIVersion(rc.Version))

	// 10. Request metrics
	if rc.Metrics != nil {
		r.Use(metrics.NewMiddleware(cfg.Metrics.Namespace, rc.Metrics.Registry()).Handler)
	}

	r.NotFound(rs.NotFound)
	r.MethodNotAllowed(rs.MethodNotAllowed)

	// ============================================================================
	// Routes
	// ============================================================================

	r.Get("/health", rc.Health.Health)
	if rc.Metrics != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, rc.Metrics.Handler())
	}

	r.Get("/", rc.Estimates.Page)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))
		r.Use(middleware.ContentTypeJSON)

		r.Route("/estimates", func(r chi.Router) {
			r.Get("/", rc.Estimates.GetEstimate)
			r.Post("/", rc.Estimates.PostEstimate)
			r.Post("/sections", rc.Estimates.Sections)
			r.Get("/curve", rc.Estimates.Curve)
		})
	})

	return r
}
