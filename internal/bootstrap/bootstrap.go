// Package bootstrap wires configuration into the components shared by the
// HTTP and CLI entry points.
package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/service"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/view"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

// NewLogger builds the zap logger described by cfg, writing to out
// (stdout when nil).
func NewLogger(cfg *config.Config, out io.Writer) (*logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
		Output:      out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log.Named(cfg.App.Name), nil
}

// Settings converts the estimator section of the config.
func Settings(cfg config.EstimatorConfig) (service.Settings, error) {
	currency, err := valueobject.ParseCurrency(cfg.Currency)
	if err != nil {
		return service.Settings{}, err
	}
	return service.Settings{
		Density:          cfg.Density,
		DefaultThickness: cfg.DefaultThickness,
		WasteLowPct:      cfg.WasteLowPct,
		WasteHighPct:     cfg.WasteHighPct,
		Currency:         currency,
	}, nil
}

// Formatter returns the display formatter for the configured locale and currency.
func Formatter(cfg config.EstimatorConfig) view.Formatter {
	return view.NewFormatter(cfg.Locale, valueobject.Currency(cfg.Currency))
}

// NewEstimateService builds the service from config.
func NewEstimateService(cfg *config.Config, log port.Logger, metrics port.Metrics) (*service.EstimateService, error) {
	settings, err := Settings(cfg.Estimator)
	if err != nil {
		return nil, err
	}
	return service.NewEstimateService(settings, log.With("component", "estimate_service"), metrics), nil
}

// ============================================================================
// Adapters to implement port interfaces
// ============================================================================

// PortLogger adapts l to port.Logger.
func PortLogger(l *logger.Logger) port.Logger {
	return &loggerAdapter{l}
}

// loggerAdapter adapts the logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	return &loggerAdapter{l.Logger.WithContext(ctx)}
}
