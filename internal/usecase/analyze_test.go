package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	domsvc "ChainLens/internal/domain/service"
	"ChainLens/internal/services/analytics"
	"ChainLens/internal/services/chains"
	"ChainLens/internal/services/features"
	xhttp "ChainLens/pkg/http"
)

type stubProvider struct {
	chain  string
	record *models.TokenDataRecord
	err    error
	calls  int
}

func (p *stubProvider) ChainID() string { return p.chain }

func (p *stubProvider) ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("empty address")
	}
	return nil
}

func (p *stubProvider) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.record, nil
}

type failingAnalyzer struct{ name string }

func (a *failingAnalyzer) Name() string { return a.name }

func (a *failingAnalyzer) Analyze(ctx context.Context, record *models.TokenDataRecord) models.SectionOutcome {
	return models.Failed(a.name+" failed", "forced failure")
}

func defaultAnalyzers() []domsvc.TokenAnalyzer {
	params := analytics.NewScorerParams(1337, 16, features.FeatureCount)
	return []domsvc.TokenAnalyzer{
		analytics.NewPricePredictor(analytics.PricePredictorConfig{}, params, nil),
		analytics.NewRiskAssessor(features.AnnualizationDays, nil),
		analytics.NewBehaviorAnalyzer(features.DefaultTrendLookback, features.AnnualizationDays, nil),
	}
}

func registryWith(p domrepo.TokenDataProvider) *chains.Registry {
	infos := []chains.ChainInfo{
		{ID: "ethereum", Name: "Ethereum", Status: string(chains.StatusActive)},
		{ID: "polkadot", Name: "Polkadot", Status: string(chains.StatusComingSoon)},
	}
	return chains.NewRegistryWith(infos, map[string]domrepo.TokenDataProvider{"ethereum": p})
}

func ethereumRecord() *models.TokenDataRecord {
	return &models.TokenDataRecord{
		ChainType:     "ethereum",
		TokenAddress:  "0xabc",
		Metadata:      map[string]interface{}{"symbol": "TEST", "chain": "ethereum"},
		PriceHistory:  []float64{1.0, 1.1, 1.2, 1.3, 1.4},
		VolumeHistory: []float64{10, 11, 12, 13, 14},
		LiquidityData: []float64{100, 100, 100, 100, 100},
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	resp, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
		ChainType:    "ethereum",
		TokenAddress: "0xabc",
		AnalysisType: []string{"price"},
	})
	require.NoError(t, err)
	require.False(t, resp.MarketPerformance.IsErr())

	pr, ok := resp.MarketPerformance.Value.(*models.PredictionResult)
	require.True(t, ok)
	assert.Equal(t, []string{"Upward Trend"}, pr.PriceTrends)
	assert.Greater(t, pr.VolatilityIndex, 0.0)
	assert.Greater(t, pr.ConfidenceScore, 0.0)
	assert.Less(t, pr.ConfidenceScore, 1.0)
	assert.Equal(t, "TEST", resp.TokenMetadata["symbol"])
	assert.False(t, resp.Timestamp.IsZero())

	// only price was requested
	assert.Nil(t, resp.RiskAssessment.Value)
	assert.Nil(t, resp.Recommendations.Value)
}

func TestAnalyzeAllSections(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	resp, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
		ChainType:    "ethereum",
		TokenAddress: "0xabc",
	})
	require.NoError(t, err)
	assert.False(t, resp.MarketPerformance.IsErr())
	assert.False(t, resp.RiskAssessment.IsErr())
	assert.False(t, resp.Recommendations.IsErr())
	assert.NotNil(t, resp.RiskAssessment.Value)
	assert.NotNil(t, resp.Recommendations.Value)
}

func TestAnalyzeUnsupportedChainRejectedBeforeWork(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	for _, chain := range []string{"polkadot", "bitcoin", ""} {
		_, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
			ChainType:    chain,
			TokenAddress: "0xabc",
		})
		require.Error(t, err, "chain %q", chain)

		var appErr *xhttp.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}
	assert.Equal(t, 0, provider.calls, "no data may be fetched for rejected chains")
}

func TestAnalyzeInvalidAddressRejectedBeforeFetch(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	_, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
		ChainType:    "ethereum",
		TokenAddress: "",
	})
	require.Error(t, err)
	assert.Equal(t, 0, provider.calls)
}

func TestAnalyzeDataUnavailableIsFatal(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", err: fmt.Errorf("rpc timeout")}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	_, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
		ChainType:    "ethereum",
		TokenAddress: "0xabc",
	})
	require.Error(t, err)

	var appErr *xhttp.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
}

func TestAnalyzePartialFailureKeepsSiblings(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	analyzers := defaultAnalyzers()
	analyzers[0] = &failingAnalyzer{name: models.SectionPrice}
	uc := NewAnalyzeUseCase(registryWith(provider), analyzers, nil, nil)

	resp, err := uc.Analyze(context.Background(), &models.AnalyzeRequest{
		ChainType:    "ethereum",
		TokenAddress: "0xabc",
	})
	require.NoError(t, err, "one failing branch must not abort the response")

	require.True(t, resp.MarketPerformance.IsErr())
	assert.Equal(t, "price failed", resp.MarketPerformance.Err.Error)
	assert.False(t, resp.RiskAssessment.IsErr())
	assert.NotNil(t, resp.RiskAssessment.Value)
	assert.False(t, resp.Recommendations.IsErr())
	assert.NotNil(t, resp.Recommendations.Value)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestChainsListing(t *testing.T) {
	provider := &stubProvider{chain: "ethereum", record: ethereumRecord()}
	uc := NewAnalyzeUseCase(registryWith(provider), defaultAnalyzers(), nil, nil)

	list := uc.Chains()
	require.Len(t, list, 2)
	assert.Equal(t, "ethereum", list[0].ID)
	assert.Equal(t, string(chains.StatusComingSoon), list[1].Status)
}
