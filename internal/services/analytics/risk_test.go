package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainLens/internal/domain/models"
	"ChainLens/internal/services/features"
)

func riskOf(t *testing.T, rec *models.TokenDataRecord) *models.RiskAssessment {
	t.Helper()
	out := NewRiskAssessor(features.AnnualizationDays, nil).Analyze(context.Background(), rec)
	require.False(t, out.IsErr())
	res, ok := out.Value.(*models.RiskAssessment)
	require.True(t, ok)
	return res
}

func TestRiskAssessorDeepCalmMarket(t *testing.T) {
	res := riskOf(t, &models.TokenDataRecord{
		PriceHistory:  []float64{100, 100.2, 100.1, 100.3, 100.2},
		LiquidityData: []float64{500_000, 510_000, 505_000},
	})
	assert.Equal(t, "low", res.Rating)
	assert.Empty(t, res.RiskFactors)
	assert.InDelta(t, 505_000, res.Liquidity, 1)
}

func TestRiskAssessorThinLiquidity(t *testing.T) {
	res := riskOf(t, &models.TokenDataRecord{
		PriceHistory:  []float64{1, 1.01, 0.99, 1.0},
		LiquidityData: []float64{800, 900, 850},
	})
	assert.GreaterOrEqual(t, res.RiskLevel, 0.3)
	assert.Contains(t, res.RiskFactors[0], "Thin liquidity")
}

func TestRiskAssessorVolatileToken(t *testing.T) {
	res := riskOf(t, &models.TokenDataRecord{
		PriceHistory:  []float64{1, 3, 0.5, 2.5, 0.8},
		LiquidityData: []float64{500_000, 500_000},
	})
	assert.Contains(t, res.RiskFactors, "High annualized volatility")
	assert.Greater(t, res.Volatility, highVolatility)
}

func TestRiskAssessorNoData(t *testing.T) {
	res := riskOf(t, &models.TokenDataRecord{})
	assert.NotEmpty(t, res.RiskFactors)
	assert.Greater(t, res.RiskLevel, 0.0)
	assert.LessOrEqual(t, res.RiskLevel, 1.0)
}

func TestBehaviorAnalyzerUptrend(t *testing.T) {
	a := NewBehaviorAnalyzer(features.DefaultTrendLookback, features.AnnualizationDays, nil)
	out := a.Analyze(context.Background(), &models.TokenDataRecord{
		PriceHistory:  []float64{1.0, 1.1, 1.2, 1.3, 1.4},
		VolumeHistory: []float64{10, 11, 12, 13, 14},
		LiquidityData: []float64{100_000, 100_000},
	})
	require.False(t, out.IsErr())
	recs, ok := out.Value.([]string)
	require.True(t, ok)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Momentum is positive")
}

func TestBehaviorAnalyzerNoHistory(t *testing.T) {
	a := NewBehaviorAnalyzer(features.DefaultTrendLookback, features.AnnualizationDays, nil)
	out := a.Analyze(context.Background(), &models.TokenDataRecord{})
	require.False(t, out.IsErr())
	recs, ok := out.Value.([]string)
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Insufficient price history")
}

func TestBehaviorAnalyzerDowntrendThinBook(t *testing.T) {
	a := NewBehaviorAnalyzer(features.DefaultTrendLookback, features.AnnualizationDays, nil)
	out := a.Analyze(context.Background(), &models.TokenDataRecord{
		PriceHistory:  []float64{5, 4, 3, 2, 1},
		VolumeHistory: []float64{100, 40},
		LiquidityData: []float64{500},
	})
	require.False(t, out.IsErr())
	recs := out.Value.([]string)
	assert.Contains(t, recs[0], "Momentum is negative")
	assert.Contains(t, recs, "Liquidity is thin; expect slippage on larger orders")
	assert.Contains(t, recs, "Trade volume is fading; moves may lack follow-through")
}
