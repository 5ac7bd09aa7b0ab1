package analytics

import (
	"context"
	"fmt"
	"math"

	"ChainLens/internal/domain/models"
	domsvc "ChainLens/internal/domain/service"
	"ChainLens/internal/services/features"
	xlogger "ChainLens/pkg/logger"
)

var _ domsvc.TokenAnalyzer = (*RiskAssessor)(nil)

const errRiskAssessment = "risk assessment failed"

// Risk scoring thresholds. Liquidity is the mean of the liquidity series;
// drawdown is the relative fall of the latest reading below that mean.
const (
	thinLiquidity      = 10_000.0
	highVolatility     = 1.5
	elevatedVolatility = 0.75
	liquidityDrawdown  = 0.3
)

// RiskAssessor scores liquidity depth, liquidity stability and price
// volatility into a bounded risk level with named factors. Same contract as
// the price branch: total, never panics past its boundary.
type RiskAssessor struct {
	annualizationDays float64
	logger            *xlogger.Logger
}

func NewRiskAssessor(annualizationDays float64, logger *xlogger.Logger) *RiskAssessor {
	if annualizationDays <= 0 {
		annualizationDays = features.AnnualizationDays
	}
	return &RiskAssessor{annualizationDays: annualizationDays, logger: logger}
}

func (a *RiskAssessor) Name() string { return models.SectionRisk }

func (a *RiskAssessor) Analyze(ctx context.Context, record *models.TokenDataRecord) (out models.SectionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("risk assessment panic", xlogger.Any("cause", r))
			}
			out = models.Failed(errRiskAssessment, fmt.Sprintf("%v", r))
		}
	}()
	return models.OK(a.assess(record))
}

func (a *RiskAssessor) assess(record *models.TokenDataRecord) *models.RiskAssessment {
	level := 0.0
	factors := make([]string, 0, 4)

	liq := meanOf(record.LiquidityData)
	vol := features.Volatility(record.PriceHistory, a.annualizationDays)
	if math.IsNaN(vol) || math.IsInf(vol, 0) {
		vol = 0
		level += 0.2
		factors = append(factors, "Volatility undefined for price history")
	}

	if len(record.LiquidityData) == 0 {
		level += 0.25
		factors = append(factors, "No liquidity data available")
	} else if liq < thinLiquidity {
		level += 0.3
		factors = append(factors, fmt.Sprintf("Thin liquidity below %.0f", thinLiquidity))
	}

	if n := len(record.LiquidityData); n > 1 && liq > 0 {
		latest := record.LiquidityData[n-1]
		if (liq-latest)/liq > liquidityDrawdown {
			level += 0.2
			factors = append(factors, "Liquidity draining from recent average")
		}
	}

	switch {
	case vol > highVolatility:
		level += 0.35
		factors = append(factors, "High annualized volatility")
	case vol > elevatedVolatility:
		level += 0.15
		factors = append(factors, "Elevated annualized volatility")
	}

	if len(record.PriceHistory) < 2 {
		level += 0.2
		factors = append(factors, "Insufficient price history")
	}

	if level > 1 {
		level = 1
	}

	return &models.RiskAssessment{
		RiskLevel:   level,
		Rating:      ratingFor(level),
		RiskFactors: factors,
		Liquidity:   liq,
		Volatility:  vol,
	}
}

func ratingFor(level float64) string {
	switch {
	case level >= 0.6:
		return "high"
	case level >= 0.3:
		return "moderate"
	default:
		return "low"
	}
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
