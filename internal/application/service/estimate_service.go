// Package service contains the use cases shared by the HTTP and CLI shells.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/entity"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Metric names recorded by EstimateService.
const (
	MetricEstimates        = "estimates_total"
	MetricEstimateTons     = "estimate_tons"
	MetricEstimateDuration = "estimate_duration_seconds"
)

// Estimate kinds, used as the "kind" metric tag.
const (
	KindSingle   = "single"
	KindSections = "sections"
	KindCurve    = "curve"
)

// Settings are the operator-level constants of every estimate.
type Settings struct {
	Density          float64
	DefaultThickness float64
	WasteLowPct      float64
	WasteHighPct     float64
	Currency         valueobject.Currency
}

// DefaultSettings returns the reference constants.
func DefaultSettings() Settings {
	return Settings{
		Density:          estimator.DefaultDensity,
		DefaultThickness: estimator.DefaultThickness,
		WasteLowPct:      estimator.WasteLowPct,
		WasteHighPct:     estimator.WasteHighPct,
		Currency:         valueobject.CurrencyUSD,
	}
}

// EstimateService turns request DTOs into estimates.
// It holds no per-request state and is safe for concurrent use.
type EstimateService struct {
	settings Settings
	logger   port.Logger
	metrics  port.Metrics
}

// NewEstimateService creates an EstimateService.
//
// Parameters:
//   - settings: Density, default thickness, waste range and currency
//   - logger: Logger for request-scoped debug output
//   - metrics: Metrics sink
//
// Returns:
//   - *EstimateService: the service
func NewEstimateService(settings Settings, logger port.Logger, metrics port.Metrics) *EstimateService {
	return &EstimateService{
		settings: settings,
		logger:   logger,
		metrics:  metrics,
	}
}

// Settings returns the service constants.
func (s *EstimateService) Settings() Settings {
	return s.settings
}

// Input builds the estimator input for a single-area request.
func (s *EstimateService) Input(req dto.EstimateRequest) estimator.Input {
	return estimator.Input{
		Slab:        valueobject.NewSlab(req.Length.Float(), req.Width.Float(), s.thickness(req.Thickness)),
		Density:     s.settings.Density,
		PricePerTon: req.Price.Float(),
	}
}

// Estimate computes a single-area estimate.
func (s *EstimateService) Estimate(ctx context.Context, req dto.EstimateRequest) dto.EstimateResponse {
	defer s.observe(KindSingle, time.Now())

	in := s.Input(req)
	b := in.Breakdown()
	res := b.Result()

	s.logger.WithContext(ctx).Debug("Estimate computed",
		"slab", in.Slab.String(),
		"price", in.PricePerTon,
		"tons", res.Tons,
		"cost", res.Cost,
	)
	s.metrics.Histogram(MetricEstimateTons, res.Tons, map[string]string{"kind": KindSingle})

	return dto.EstimateResponse{
		Input: dto.InputEcho{
			Length:    in.Slab.LengthFt,
			Width:     in.Slab.WidthFt,
			Thickness: in.Slab.ThicknessIn,
			Price:     in.PricePerTon,
			Density:   in.Density,
		},
		Result:         res,
		Breakdown:      b,
		Recommendation: b.Recommend(s.settings.WasteLowPct, s.settings.WasteHighPct),
	}
}

// Sections converts a sections request to domain sections.
// Unnamed sections are numbered from 1.
func (s *EstimateService) Sections(req dto.SectionsRequest) []estimator.Section {
	sections := make([]estimator.Section, 0, len(req.Sections))
	for i, sr := range req.Sections {
		name := sr.Name
		if name == "" {
			name = fmt.Sprintf("section %d", i+1)
		}
		sections = append(sections, estimator.Section{
			Name: name,
			Slab: valueobject.NewSlab(sr.Length.Float(), sr.Width.Float(), s.thickness(sr.Thickness)),
		})
	}
	return sections
}

// EstimateSections computes an irregular-area estimate.
func (s *EstimateService) EstimateSections(ctx context.Context, sections []estimator.Section, pricePerTon float64) dto.SectionsResponse {
	defer s.observe(KindSections, time.Now())

	res := estimator.EstimateSections(sections, s.settings.Density, pricePerTon)

	s.logger.WithContext(ctx).Debug("Sections estimate computed",
		"sections", len(sections),
		"tons", res.Total.Tons,
		"cost", res.Total.Cost,
	)
	s.metrics.Histogram(MetricEstimateTons, res.Total.Tons, map[string]string{"kind": KindSections})

	return dto.SectionsResponse{
		Sections:       res.Sections,
		Total:          res.Total,
		Breakdown:      res.Breakdown,
		Recommendation: res.Breakdown.Recommend(s.settings.WasteLowPct, s.settings.WasteHighPct),
		Density:        s.settings.Density,
		Price:          pricePerTon,
	}
}

// Curve computes the estimate at every thickness slider stop.
func (s *EstimateService) Curve(ctx context.Context, req dto.CurveRequest) dto.CurveResponse {
	defer s.observe(KindCurve, time.Now())

	length, width, price := req.Length.Float(), req.Width.Float(), req.Price.Float()
	points := estimator.Curve(length, width, s.settings.Density, price)

	s.logger.WithContext(ctx).Debug("Thickness curve computed", "points", len(points))

	return dto.CurveResponse{
		Length:  length,
		Width:   width,
		Price:   price,
		Density: s.settings.Density,
		Points:  points,
	}
}

// Quote builds an exportable quote for a single area.
func (s *EstimateService) Quote(ctx context.Context, project string, req dto.EstimateRequest) (*entity.Quote, error) {
	q, err := entity.NewQuote(project, s.Input(req), s.settings.Currency, s.waste())
	if err != nil {
		return nil, fmt.Errorf("failed to build quote: %w", err)
	}
	s.logger.WithContext(ctx).Info("Quote created",
		"quote_id", q.ID.String(),
		"project", q.Project,
		"cost", q.Cost.String(),
	)
	return q, nil
}

// SectionsQuote builds an exportable quote for an area broken into sections.
func (s *EstimateService) SectionsQuote(ctx context.Context, project string, sections []estimator.Section, pricePerTon float64) (*entity.Quote, error) {
	q, err := entity.NewSectionsQuote(project, sections, s.settings.Density, pricePerTon, s.settings.Currency, s.waste())
	if err != nil {
		return nil, fmt.Errorf("failed to build quote: %w", err)
	}
	s.logger.WithContext(ctx).Info("Quote created",
		"quote_id", q.ID.String(),
		"project", q.Project,
		"sections", len(q.Sections),
		"cost", q.Cost.String(),
	)
	return q, nil
}

func (s *EstimateService) thickness(n *dto.Number) float64 {
	if n == nil {
		return s.settings.DefaultThickness
	}
	return n.Float()
}

func (s *EstimateService) observe(kind string, start time.Time) {
	tags := map[string]string{"kind": kind}
	s.metrics.Counter(MetricEstimates, 1, tags)
	s.metrics.Timing(MetricEstimateDuration, time.Since(start), tags)
}

func (s *EstimateService) waste() entity.QuoteOption {
	return entity.WithWaste(s.settings.WasteLowPct, s.settings.WasteHighPct)
}
