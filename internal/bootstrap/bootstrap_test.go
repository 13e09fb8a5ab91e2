package bootstrap

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/metrics"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestSettings(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Estimator.Currency = "eur"
	cfg.Estimator.Density = 150

	s, err := Settings(cfg.Estimator)
	require.NoError(t, err)
	assert.Equal(t, valueobject.CurrencyEUR, s.Currency)
	assert.Equal(t, 150.0, s.Density)

	cfg.Estimator.Currency = "XYZ"
	_, err = Settings(cfg.Estimator)
	assert.ErrorIs(t, err, valueobject.ErrInvalidCurrency)
}

func TestNewEstimateService(t *testing.T) {
	cfg := loadConfig(t)

	svc, err := NewEstimateService(cfg, PortLogger(logger.NewNop()), metrics.Nop{})
	require.NoError(t, err)

	resp := svc.Estimate(context.Background(), dto.EstimateRequest{Length: "50", Width: "20", Price: "80"})
	assert.Equal(t, 1450.0, resp.Result.Cost)
}

func TestPortLogger(t *testing.T) {
	cfg := loadConfig(t)
	var buf bytes.Buffer

	log, err := NewLogger(cfg, &buf)
	require.NoError(t, err)

	ctx := logger.ContextWithRequestID(context.Background(), "req-9")
	PortLogger(log).With("component", "test").WithContext(ctx).Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"request_id":"req-9"`)
	assert.Contains(t, out, `"logger":"asphalt-estimator"`)
}

func TestFormatter(t *testing.T) {
	cfg := loadConfig(t)
	assert.Equal(t, "$1,450", Formatter(cfg.Estimator).Cost(1450))
}
