package cache

import (
	"context"
	"encoding/json"
	"time"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	xlogger "ChainLens/pkg/logger"
)

// CachingProvider is a read-through decorator around a TokenDataProvider:
// records are JSON-encoded into a BytesCache under chain:address for a
// short TTL so bursts against one token do not hammer the upstream data
// source. Cache failures fall back to the live fetch.
type CachingProvider struct {
	inner  domrepo.TokenDataProvider
	cache  BytesCache
	ttl    time.Duration
	logger *xlogger.Logger
}

func NewCachingProvider(inner domrepo.TokenDataProvider, cache BytesCache, ttl time.Duration, logger *xlogger.Logger) *CachingProvider {
	return &CachingProvider{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (p *CachingProvider) ChainID() string { return p.inner.ChainID() }

func (p *CachingProvider) ValidateAddress(address string) error {
	return p.inner.ValidateAddress(address)
}

func (p *CachingProvider) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	key := p.inner.ChainID() + ":" + address

	if b, ok, err := p.cache.GetBytes(key); err == nil && ok {
		var rec models.TokenDataRecord
		if err := json.Unmarshal(b, &rec); err == nil {
			return &rec, nil
		}
		// corrupt entry, fall through to live fetch
	} else if err != nil && p.logger != nil {
		p.logger.Warn("record cache read error", xlogger.Error(err))
	}

	rec, err := p.inner.GetTokenData(ctx, address)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(rec); err == nil {
		if err := p.cache.SetBytes(key, b, p.ttl); err != nil && p.logger != nil {
			p.logger.Warn("record cache write error", xlogger.Error(err))
		}
	}
	return rec, nil
}

var _ domrepo.TokenDataProvider = (*CachingProvider)(nil)
