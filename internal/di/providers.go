package di

import (
	"fmt"
	"io"

	domrepo "ChainLens/internal/domain/repository"
	domsvc "ChainLens/internal/domain/service"
	"ChainLens/internal/handler/api"
	icache "ChainLens/internal/service/cache"
	"ChainLens/internal/services/analytics"
	"ChainLens/internal/services/chains"
	"ChainLens/internal/services/features"
	"ChainLens/internal/usecase"
	"ChainLens/pkg/config"
	xhttp "ChainLens/pkg/http"
	applogger "ChainLens/pkg/logger"
	"ChainLens/pkg/metrics"
	"ChainLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideScorerParams builds the seeded score-model weights.
func ProvideScorerParams(cfg *config.Config) *analytics.ScorerParams {
	return analytics.NewScorerParams(cfg.Analysis.Seed, cfg.Analysis.HiddenSize, features.FeatureCount)
}

// ProvideAnalyzers assembles the analysis branches run per request.
func ProvideAnalyzers(cfg *config.Config, params *analytics.ScorerParams, l *applogger.Logger) []domsvc.TokenAnalyzer {
	predictor := analytics.NewPricePredictor(analytics.PricePredictorConfig{
		Window:            cfg.Analysis.Window,
		Epsilon:           cfg.Analysis.Epsilon,
		TrendLookback:     cfg.Analysis.TrendLookback,
		AnnualizationDays: cfg.Analysis.AnnualizationDays,
		MaxMove:           cfg.Analysis.MaxMove,
	}, params, l)

	return []domsvc.TokenAnalyzer{
		predictor,
		analytics.NewRiskAssessor(cfg.Analysis.AnnualizationDays, l),
		analytics.NewBehaviorAnalyzer(cfg.Analysis.TrendLookback, cfg.Analysis.AnnualizationDays, l),
	}
}

// ProvideRecordCache selects the token-record cache backend from config.
func ProvideRecordCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideRegistry wires the chain providers, decorated with the
// read-through record cache when a TTL is configured.
func ProvideRegistry(cfg *config.Config, store icache.BytesCache, l *applogger.Logger) *chains.Registry {
	registry := chains.NewRegistry(cfg)
	if cfg.Cache.TTL > 0 {
		registry.WrapProviders(func(p domrepo.TokenDataProvider) domrepo.TokenDataProvider {
			return icache.NewCachingProvider(p, store, cfg.Cache.TTL, l)
		})
	}
	return registry
}

// ProvideAnalyzeUseCase creates the analysis aggregation use case.
func ProvideAnalyzeUseCase(
	registry *chains.Registry,
	analyzers []domsvc.TokenAnalyzer,
	m domrepo.Metrics,
	l *applogger.Logger,
) *usecase.AnalyzeUseCase {
	return usecase.NewAnalyzeUseCase(registry, analyzers, m, l)
}

// ProvideHTTPHandler creates the HTTP edge for the analysis API.
func ProvideHTTPHandler(cfg *config.Config, l *applogger.Logger, uc *usecase.AnalyzeUseCase) xhttp.Handler {
	h := api.NewAnalyzeHandler(l, uc)
	if cfg.RateLimit.Enabled {
		h.EnableRateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	}
	return h
}

// ProvideApp assembles the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, store icache.BytesCache) *server.App {
	app := server.New(cfg, l, handler)
	if c, ok := store.(io.Closer); ok {
		app.AddCloser(c)
	}
	return app
}
