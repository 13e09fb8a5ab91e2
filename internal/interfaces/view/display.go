package view

import (
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// Display returns the panel in its API shape.
func (f Formatter) Display(result estimator.Result) *dto.DisplayResponse {
	p := f.Panel(result)
	return &dto.DisplayResponse{
		Tons:     p.Tons,
		Cost:     p.Cost,
		ShowCost: p.ShowCost,
	}
}
