package analytics

import (
	"context"
	"fmt"

	"ChainLens/internal/domain/models"
	domsvc "ChainLens/internal/domain/service"
	"ChainLens/internal/services/features"
	xlogger "ChainLens/pkg/logger"
)

var _ domsvc.TokenAnalyzer = (*BehaviorAnalyzer)(nil)

const errBehaviorAnalysis = "behavioral analysis failed"

// BehaviorAnalyzer turns trend direction, volatility band and volume
// behavior into ordered textual recommendations. It fills the
// recommendations section of the response.
type BehaviorAnalyzer struct {
	trendLookback     int
	annualizationDays float64
	logger            *xlogger.Logger
}

func NewBehaviorAnalyzer(trendLookback int, annualizationDays float64, logger *xlogger.Logger) *BehaviorAnalyzer {
	if trendLookback < 2 {
		trendLookback = features.DefaultTrendLookback
	}
	if annualizationDays <= 0 {
		annualizationDays = features.AnnualizationDays
	}
	return &BehaviorAnalyzer{trendLookback: trendLookback, annualizationDays: annualizationDays, logger: logger}
}

func (a *BehaviorAnalyzer) Name() string { return models.SectionBehavior }

func (a *BehaviorAnalyzer) Analyze(ctx context.Context, record *models.TokenDataRecord) (out models.SectionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("behavioral analysis panic", xlogger.Any("cause", r))
			}
			out = models.Failed(errBehaviorAnalysis, fmt.Sprintf("%v", r))
		}
	}()
	return models.OK(a.recommend(record))
}

func (a *BehaviorAnalyzer) recommend(record *models.TokenDataRecord) []string {
	recs := make([]string, 0, 4)

	trends := features.TrendLabels(record.PriceHistory, a.trendLookback)
	if len(trends) == 0 {
		recs = append(recs, "Insufficient price history; gather more data before acting")
		return recs
	}

	switch trends[0] {
	case features.TrendUp:
		recs = append(recs, "Momentum is positive; favorable window for staged entries")
	case features.TrendDown:
		recs = append(recs, "Momentum is negative; avoid new exposure until the trend stabilizes")
	default:
		recs = append(recs, "Price is moving sideways; wait for a directional break")
	}

	vol := features.Volatility(record.PriceHistory, a.annualizationDays)
	switch {
	case vol > highVolatility:
		recs = append(recs, "Volatility is extreme; size positions down and use tight limits")
	case vol > elevatedVolatility:
		recs = append(recs, "Volatility is elevated; prefer limit orders over market orders")
	}

	if n := len(record.VolumeHistory); n >= 2 {
		if record.VolumeHistory[n-1] < record.VolumeHistory[n-2] {
			recs = append(recs, "Trade volume is fading; moves may lack follow-through")
		}
	}

	if meanOf(record.LiquidityData) < thinLiquidity {
		recs = append(recs, "Liquidity is thin; expect slippage on larger orders")
	}

	return recs
}
