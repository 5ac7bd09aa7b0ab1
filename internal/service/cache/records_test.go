package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainLens/internal/domain/models"
)

type countingProvider struct {
	calls int
	fail  bool
}

func (p *countingProvider) ChainID() string { return "ethereum" }

func (p *countingProvider) ValidateAddress(address string) error { return nil }

func (p *countingProvider) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	p.calls++
	if p.fail {
		return nil, fmt.Errorf("upstream down")
	}
	return &models.TokenDataRecord{
		ChainType:    "ethereum",
		TokenAddress: address,
		PriceHistory: []float64{1, 2, 3},
	}, nil
}

func TestCachingProviderReadThrough(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachingProvider(inner, NewTTLCache(), time.Minute, nil)

	a, err := p.GetTokenData(context.Background(), "0xabc")
	require.NoError(t, err)
	b, err := p.GetTokenData(context.Background(), "0xabc")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "second read must be served from cache")
	assert.Equal(t, a.PriceHistory, b.PriceHistory)
	assert.Equal(t, "0xabc", b.TokenAddress)
}

func TestCachingProviderDistinctKeys(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachingProvider(inner, NewTTLCache(), time.Minute, nil)

	_, err := p.GetTokenData(context.Background(), "0xabc")
	require.NoError(t, err)
	_, err = p.GetTokenData(context.Background(), "0xdef")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachingProviderUpstreamError(t *testing.T) {
	inner := &countingProvider{fail: true}
	p := NewCachingProvider(inner, NewTTLCache(), time.Minute, nil)

	_, err := p.GetTokenData(context.Background(), "0xabc")
	assert.Error(t, err)

	// failures are not cached
	_, err = p.GetTokenData(context.Background(), "0xabc")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}
