package usecase

import (
	"context"
	"sync"
	"time"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	domsvc "ChainLens/internal/domain/service"
	"ChainLens/internal/services/chains"
	xhttp "ChainLens/pkg/http"
	xlogger "ChainLens/pkg/logger"
)

// AnalyzeUseCase orchestrates one token analysis request: chain and address
// validation, record resolution, then a concurrent fan-out over the
// registered analysis branches. Branch failures degrade their own section;
// only validation and data retrieval abort the request.
type AnalyzeUseCase struct {
	registry  *chains.Registry
	analyzers []domsvc.TokenAnalyzer
	metrics   domrepo.Metrics
	logger    *xlogger.Logger
	timeout   time.Duration
}

func NewAnalyzeUseCase(registry *chains.Registry, analyzers []domsvc.TokenAnalyzer, metrics domrepo.Metrics, logger *xlogger.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		registry:  registry,
		analyzers: analyzers,
		metrics:   metrics,
		logger:    logger,
		timeout:   10 * time.Second,
	}
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResponse, error) {
	chain := domrepo.NormalizeChain(req.ChainType)
	provider, ok := uc.registry.Provider(chain)
	if !ok {
		return nil, xhttp.BadRequestErrorf("unsupported blockchain type %q", req.ChainType)
	}
	if err := provider.ValidateAddress(req.TokenAddress); err != nil {
		return nil, xhttp.BadRequestErrorf("invalid token address: %v", err)
	}

	// Overall timeout covers retrieval and compute
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	record, err := provider.GetTokenData(ctx, req.TokenAddress)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("token data unavailable",
				xlogger.String("chain", string(chain)),
				xlogger.String("address", req.TokenAddress),
				xlogger.Error(err))
		}
		return nil, xhttp.UnavailableErrorf("token data unavailable for %s on %s", req.TokenAddress, chain).WithError(err)
	}

	resp := &models.AnalysisResponse{
		TokenMetadata: record.Metadata,
	}

	type item struct {
		name string
		out  models.SectionOutcome
	}
	ch := make(chan item, len(uc.analyzers))
	var wg sync.WaitGroup

	for _, a := range uc.analyzers {
		if !req.Wants(a.Name()) {
			continue
		}
		wg.Add(1)
		go func(a domsvc.TokenAnalyzer) {
			defer wg.Done()
			start := time.Now()
			out := a.Analyze(ctx, record)
			if uc.metrics != nil {
				uc.metrics.RecordDuration(a.Name(), time.Since(start).Seconds())
				uc.metrics.RecordAnalysis(string(chain), a.Name())
				if out.IsErr() {
					uc.metrics.RecordSectionError(a.Name())
				}
			}
			ch <- item{name: a.Name(), out: out}
		}(a)
	}

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		switch it.name {
		case models.SectionPrice:
			resp.MarketPerformance = it.out
			if !it.out.IsErr() {
				if pr, ok := it.out.Value.(*models.PredictionResult); ok && uc.metrics != nil {
					uc.metrics.RecordPredictedPrice(string(chain), pr.PredictedPrice)
				}
			}
		case models.SectionRisk:
			resp.RiskAssessment = it.out
		case models.SectionBehavior:
			resp.Recommendations = it.out
		}
	}

	resp.Timestamp = time.Now().UTC()
	return resp, nil
}

// Chains lists all registered chains for the discovery endpoint.
func (uc *AnalyzeUseCase) Chains() []chains.ChainInfo {
	return uc.registry.List()
}
