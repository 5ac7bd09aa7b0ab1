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

const errPricePrediction = "price prediction failed"

// PricePredictorConfig carries the tunables of the price branch.
type PricePredictorConfig struct {
	Window            int
	Epsilon           float64
	TrendLookback     int
	AnnualizationDays float64
	MaxMove           float64 // bound on predicted relative price move, e.g. 0.1
}

// PricePredictor is the market-performance branch: feature extraction, the
// sequence scorer, trend labels and the volatility index, fused into one
// PredictionResult. Failures never escape; they downgrade to an ErrorResult
// for this section only.
type PricePredictor struct {
	cfg    PricePredictorConfig
	params *ScorerParams
	logger *xlogger.Logger
}

func NewPricePredictor(cfg PricePredictorConfig, params *ScorerParams, logger *xlogger.Logger) *PricePredictor {
	if cfg.Window <= 0 {
		cfg.Window = features.DefaultWindow
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = features.DefaultEpsilon
	}
	if cfg.TrendLookback < 2 {
		cfg.TrendLookback = features.DefaultTrendLookback
	}
	if cfg.AnnualizationDays <= 0 {
		cfg.AnnualizationDays = features.AnnualizationDays
	}
	if cfg.MaxMove <= 0 {
		cfg.MaxMove = 0.1
	}
	return &PricePredictor{cfg: cfg, params: params, logger: logger}
}

func (p *PricePredictor) Name() string { return models.SectionPrice }

func (p *PricePredictor) Analyze(ctx context.Context, record *models.TokenDataRecord) (out models.SectionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			if p.logger != nil {
				p.logger.Error("price prediction panic", xlogger.Any("cause", r))
			}
			out = models.Failed(errPricePrediction, fmt.Sprintf("%v", r))
		}
	}()

	result, err := p.predict(record)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("price prediction error", xlogger.Error(err))
		}
		return models.Failed(errPricePrediction, err.Error())
	}
	return models.OK(result)
}

func (p *PricePredictor) predict(record *models.TokenDataRecord) (*models.PredictionResult, error) {
	matrix := features.Extract(record, p.cfg.Window, p.cfg.Epsilon)

	score, err := p.params.Score(matrix)
	if err != nil {
		return nil, err
	}

	vol := features.Volatility(record.PriceHistory, p.cfg.AnnualizationDays)
	if math.IsNaN(vol) || math.IsInf(vol, 0) {
		return nil, fmt.Errorf("non-finite volatility index")
	}

	predicted := p.predictedPrice(record.LastPrice(), score)
	if math.IsNaN(predicted) || math.IsInf(predicted, 0) {
		return nil, fmt.Errorf("non-finite predicted price")
	}

	return &models.PredictionResult{
		PredictedPrice:  predicted,
		ConfidenceScore: ConfidenceFromVolatility(vol),
		PriceTrends:     features.TrendLabels(record.PriceHistory, p.cfg.TrendLookback),
		VolatilityIndex: vol,
	}, nil
}

// predictedPrice maps the raw score into the price domain: the last observed
// price scaled by a tanh-bounded relative move. Without a price history the
// bounded score itself is returned.
func (p *PricePredictor) predictedPrice(lastPrice, score float64) float64 {
	move := math.Tanh(score) * p.cfg.MaxMove
	if lastPrice <= 0 {
		return move
	}
	return lastPrice * (1 + move)
}

// ConfidenceFromVolatility is the documented confidence proxy: a logistic
// squash of the annualized volatility index, sigma(1 - vol). It is strictly
// inside (0,1) and monotonically decreasing in volatility; a calm series
// (vol ~ 0) maps to ~0.73 and vol = 1 to 0.5.
func ConfidenceFromVolatility(vol float64) float64 {
	return 1.0 / (1.0 + math.Exp(vol-1))
}

var _ domsvc.TokenAnalyzer = (*PricePredictor)(nil)
