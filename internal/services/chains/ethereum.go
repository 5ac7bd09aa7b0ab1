package chains

import (
	"context"
	"fmt"
	"strings"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	"ChainLens/pkg/config"
)

// EthereumClient resolves token-data records for ERC-20 contracts.
type EthereumClient struct {
	base *httpBase
}

func NewEthereumClient(cfg *config.Config) *EthereumClient {
	return &EthereumClient{base: newHTTPBase(string(domrepo.ChainEthereum), cfg.Chains.Ethereum)}
}

func (c *EthereumClient) ChainID() string { return string(domrepo.ChainEthereum) }

// ValidateAddress checks the 0x-prefixed hex contract address format.
// Length is left to the upstream data source so shortened identifiers
// remain queryable.
func (c *EthereumClient) ValidateAddress(address string) error {
	if !strings.HasPrefix(address, "0x") || len(address) < 3 {
		return fmt.Errorf("ethereum address %q: want 0x-prefixed hex", address)
	}
	for _, r := range address[2:] {
		if !isHex(r) {
			return fmt.Errorf("ethereum address %q: invalid hex character %q", address, r)
		}
	}
	return nil
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (c *EthereumClient) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	var td tokenDataResponse
	if err := c.base.getJSON(ctx, "/v1/tokens/"+strings.ToLower(address), &td); err != nil {
		return nil, fmt.Errorf("ethereum token data: %w", err)
	}
	return recordFrom(c.ChainID(), address, &td), nil
}

var _ domrepo.TokenDataProvider = (*EthereumClient)(nil)
