package analytics

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainLens/internal/domain/models"
)

func newTestPredictor() *PricePredictor {
	params := NewScorerParams(42, 16, 3)
	return NewPricePredictor(PricePredictorConfig{}, params, nil)
}

func TestPricePredictorHappyPath(t *testing.T) {
	p := newTestPredictor()
	rec := &models.TokenDataRecord{
		PriceHistory:  []float64{1.0, 1.1, 1.2, 1.3, 1.4},
		VolumeHistory: []float64{10, 11, 12, 13, 14},
		LiquidityData: []float64{100, 100, 100, 100, 100},
	}

	out := p.Analyze(context.Background(), rec)
	require.False(t, out.IsErr(), "expected a successful prediction")

	res, ok := out.Value.(*models.PredictionResult)
	require.True(t, ok)
	assert.Equal(t, []string{"Upward Trend"}, res.PriceTrends)
	assert.Greater(t, res.VolatilityIndex, 0.0)
	assert.Greater(t, res.ConfidenceScore, 0.0)
	assert.Less(t, res.ConfidenceScore, 1.0)
	assert.False(t, math.IsNaN(res.PredictedPrice))
	assert.False(t, math.IsInf(res.PredictedPrice, 0))
}

func TestPricePredictorDeterministic(t *testing.T) {
	p := newTestPredictor()
	rec := &models.TokenDataRecord{
		PriceHistory:  []float64{5, 4.8, 5.1, 5.3, 5.0, 5.2},
		VolumeHistory: []float64{1, 2, 3},
		LiquidityData: []float64{50_000, 51_000},
	}

	a := p.Analyze(context.Background(), rec)
	b := p.Analyze(context.Background(), rec)
	require.False(t, a.IsErr())
	require.False(t, b.IsErr())
	assert.Equal(t, a.Value, b.Value, "same record must score identically")
}

func TestPricePredictorNeverEscapes(t *testing.T) {
	p := newTestPredictor()
	cases := []struct {
		name string
		rec  *models.TokenDataRecord
	}{
		{"empty record", &models.TokenDataRecord{}},
		{"negative and zero prices", &models.TokenDataRecord{PriceHistory: []float64{-1, 0, -5, 2}}},
		{"nan volumes", &models.TokenDataRecord{
			PriceHistory:  []float64{1, 2, 3},
			VolumeHistory: []float64{math.NaN(), math.NaN()},
		}},
		{"mismatched lengths", &models.TokenDataRecord{
			PriceHistory:  []float64{1, 2},
			VolumeHistory: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			LiquidityData: []float64{9},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := p.Analyze(context.Background(), c.rec)
			if out.IsErr() {
				assert.NotEmpty(t, out.Err.Error)
				assert.NotEmpty(t, out.Err.Details)
				return
			}
			res, ok := out.Value.(*models.PredictionResult)
			require.True(t, ok)
			assert.False(t, math.IsNaN(res.PredictedPrice))
			assert.False(t, math.IsNaN(res.ConfidenceScore))
			assert.False(t, math.IsNaN(res.VolatilityIndex))
			assert.GreaterOrEqual(t, res.VolatilityIndex, 0.0)
		})
	}
}

func TestConfidenceMonotonicInVolatility(t *testing.T) {
	prev := 1.0
	for _, vol := range []float64{0, 0.25, 0.5, 1, 2, 5, 20} {
		c := ConfidenceFromVolatility(vol)
		assert.Greater(t, c, 0.0)
		assert.Less(t, c, 1.0)
		assert.Less(t, c, prev, "confidence must fall as volatility rises")
		prev = c
	}
}

func TestScorerRejectsMalformedMatrix(t *testing.T) {
	params := NewScorerParams(7, 8, 3)
	_, err := params.Score(nil)
	assert.Error(t, err)
}

func TestScorerSeedStability(t *testing.T) {
	a := NewScorerParams(99, 16, 3)
	b := NewScorerParams(99, 16, 3)
	rec := &models.TokenDataRecord{PriceHistory: []float64{1, 2, 3, 2, 1}}

	pa := NewPricePredictor(PricePredictorConfig{}, a, nil)
	pb := NewPricePredictor(PricePredictorConfig{}, b, nil)
	ra := pa.Analyze(context.Background(), rec)
	rb := pb.Analyze(context.Background(), rec)
	require.False(t, ra.IsErr())
	require.False(t, rb.IsErr())
	assert.Equal(t, ra.Value, rb.Value, "same seed must yield the same scorer")
}
