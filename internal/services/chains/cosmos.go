package chains

import (
	"context"
	"fmt"
	"strings"

	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	"ChainLens/pkg/config"
)

// CosmosClient resolves token-data records for Cosmos-SDK denoms and
// bech32 contract addresses.
type CosmosClient struct {
	base *httpBase
}

func NewCosmosClient(cfg *config.Config) *CosmosClient {
	return &CosmosClient{base: newHTTPBase(string(domrepo.ChainCosmos), cfg.Chains.Cosmos)}
}

func (c *CosmosClient) ChainID() string { return string(domrepo.ChainCosmos) }

// ValidateAddress accepts bech32-style addresses (hrp1data) and ibc/native
// denoms. Full bech32 checksum verification belongs to the data source.
func (c *CosmosClient) ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("cosmos address is empty")
	}
	if strings.HasPrefix(address, "ibc/") || !strings.Contains(address, "1") {
		// denom form, e.g. "uatom" or "ibc/<hash>"
		return nil
	}
	sep := strings.LastIndex(address, "1")
	if sep < 1 || sep == len(address)-1 {
		return fmt.Errorf("cosmos address %q: malformed bech32", address)
	}
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return fmt.Errorf("cosmos address %q: mixed case bech32", address)
	}
	return nil
}

func (c *CosmosClient) GetTokenData(ctx context.Context, address string) (*models.TokenDataRecord, error) {
	var td tokenDataResponse
	if err := c.base.getJSON(ctx, "/v1/tokens/"+address, &td); err != nil {
		return nil, fmt.Errorf("cosmos token data: %w", err)
	}
	return recordFrom(c.ChainID(), address, &td), nil
}

var _ domrepo.TokenDataProvider = (*CosmosClient)(nil)
