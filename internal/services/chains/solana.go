package chains

import (
	"context"
	"fmt"

	"github.com/mr-tron/base58"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	"ChainLens/pkg/config"
)

// SolanaClient resolves token-data records for SPL tokens.
type SolanaClient struct {
	base *httpBase
}

func NewSolanaClient(cfg *config.Config) *SolanaClient {
	return &SolanaClient{base: newHTTPBase(string(domrepo.ChainSolana), cfg.Chains.Solana)}
}

func (c *SolanaClient) ChainID() string { return string(domrepo.ChainSolana) }

// ValidateAddress checks the base58-encoded 32-byte mint address format.
func (c *SolanaClient) ValidateAddress(address string) error {
	raw, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("solana address %q: %w", address, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("solana address %q: decoded to %d bytes, want 32", address, len(raw))
	}
	return nil
}

func (c *SolanaClient) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	var td tokenDataResponse
	if err := c.base.getJSON(ctx, "/v1/tokens/"+address, &td); err != nil {
		return nil, fmt.Errorf("solana token data: %w", err)
	}
	return recordFrom(c.ChainID(), address, &td), nil
}

var _ domrepo.TokenDataProvider = (*SolanaClient)(nil)
