package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

func driveway() estimator.Input {
	return estimator.Input{
		Slab:        valueobject.NewSlab(50, 20, 3),
		Density:     estimator.DefaultDensity,
		PricePerTon: 80,
	}
}

func TestNewQuote(t *testing.T) {
	q, err := NewQuote("  Smith driveway ", driveway(), valueobject.CurrencyUSD)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, q.ID)
	assert.Equal(t, "Smith driveway", q.Project)
	assert.Equal(t, 18.13, q.Result.Tons)
	assert.Equal(t, 1450.0, q.Result.Cost)
	assert.Equal(t, int64(145000), q.Cost.Amount)
	assert.Equal(t, valueobject.CurrencyUSD, q.Cost.Currency)
	assert.Equal(t, int64(8000), q.PricePerTon.Amount)
	assert.Equal(t, 18.125, q.Breakdown.WeightTons)
	assert.Equal(t, 19.94, q.Recommendation.High.Tons)
	assert.False(t, q.IsMultiSection())
	assert.True(t, q.HasCost())
	assert.False(t, q.CreatedAt.IsZero())
}

func TestNewQuote_WithWaste(t *testing.T) {
	q, err := NewQuote("x", driveway(), valueobject.CurrencyUSD, WithWaste(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 2.0, q.Recommendation.LowPct)
	assert.Equal(t, 3.0, q.Recommendation.HighPct)
	assert.Equal(t, q.Breakdown.Recommend(2, 3), q.Recommendation)
}

func TestNewQuote_DefaultsProjectName(t *testing.T) {
	q, err := NewQuote("", driveway(), valueobject.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, UntitledProject, q.Project)
}

func TestNewQuote_InvalidDensity(t *testing.T) {
	in := driveway()
	in.Density = 0

	_, err := NewQuote("x", in, valueobject.CurrencyUSD)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}

func TestNewQuote_NoPrice(t *testing.T) {
	in := driveway()
	in.PricePerTon = 0

	q, err := NewQuote("x", in, valueobject.CurrencyUSD)
	require.NoError(t, err)
	assert.False(t, q.HasCost())
	assert.Equal(t, int64(0), q.Cost.Amount)
}

func TestNewSectionsQuote(t *testing.T) {
	sections := []estimator.Section{
		{Name: "driveway", Slab: valueobject.NewSlab(50, 20, 3)},
		{Name: "apron", Slab: valueobject.NewSlab(10, 10, 3)},
	}

	q, err := NewSectionsQuote("lot", sections, estimator.DefaultDensity, 80, valueobject.CurrencyCAD)
	require.NoError(t, err)

	assert.True(t, q.IsMultiSection())
	require.Len(t, q.Sections, 2)
	assert.Equal(t, 19.94, q.Result.Tons)
	assert.Equal(t, int64(159500), q.Cost.Amount)
	assert.Equal(t, valueobject.CurrencyCAD, q.Cost.Currency)
	assert.Equal(t, valueobject.Slab{}, q.Slab)
	assert.Equal(t, estimator.WasteLowPct, q.Recommendation.LowPct)

	q, err = NewSectionsQuote("lot", sections, estimator.DefaultDensity, 80, valueobject.CurrencyCAD, WithWaste(8, 4))
	require.NoError(t, err)
	assert.Equal(t, 4.0, q.Recommendation.LowPct)
	assert.Equal(t, 8.0, q.Recommendation.HighPct)
}

func TestNewSectionsQuote_Errors(t *testing.T) {
	_, err := NewSectionsQuote("lot", nil, estimator.DefaultDensity, 80, valueobject.CurrencyUSD)
	assert.ErrorIs(t, err, ErrNoSections)

	sections := []estimator.Section{{Name: "a", Slab: valueobject.NewSlab(1, 1, 1)}}
	_, err = NewSectionsQuote("lot", sections, -1, 80, valueobject.CurrencyUSD)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}
