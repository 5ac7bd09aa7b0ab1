package repository

import (
	"context"

	"ChainLens/internal/domain/models"
)

// TokenDataProvider resolves the raw token-data record for one address on
// one chain. Implementations own transport, retries and address rules; the
// analysis pipeline treats them as opaque.
type TokenDataProvider interface {
	ChainID() string
	ValidateAddress(address string) error
	GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error)
}

type Metrics interface {
	RecordAnalysis(chain, section string)
	RecordSectionError(section string)
	RecordDuration(section string, seconds float64)
	RecordPredictedPrice(chain string, price float64)
}
