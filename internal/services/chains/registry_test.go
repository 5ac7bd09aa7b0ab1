package chains

import (
	"testing"
	"time"

	domrepo "ChainLens/internal/domain/repository"
	"ChainLens/pkg/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Chains.Solana = config.ChainEndpoint{BaseURL: "http://localhost:9101", Timeout: time.Second}
	cfg.Chains.Ethereum = config.ChainEndpoint{BaseURL: "http://localhost:9102", Timeout: time.Second}
	cfg.Chains.Cosmos = config.ChainEndpoint{BaseURL: "http://localhost:9103", Timeout: time.Second}
	return cfg
}

func TestRegistryActiveChains(t *testing.T) {
	r := NewRegistry(testConfig())
	for _, chain := range []domrepo.ChainType{domrepo.ChainSolana, domrepo.ChainEthereum, domrepo.ChainCosmos} {
		if _, ok := r.Provider(chain); !ok {
			t.Fatalf("expected provider for %s", chain)
		}
	}
}

func TestRegistryPolkadotReserved(t *testing.T) {
	r := NewRegistry(testConfig())
	if _, ok := r.Provider(domrepo.ChainPolkadot); ok {
		t.Fatalf("polkadot must not serve analysis requests")
	}

	var listed *ChainInfo
	for _, info := range r.List() {
		if info.ID == string(domrepo.ChainPolkadot) {
			c := info
			listed = &c
		}
	}
	if listed == nil {
		t.Fatalf("polkadot should still be listed")
	}
	if listed.Status != string(StatusComingSoon) {
		t.Fatalf("polkadot status %q, want coming_soon", listed.Status)
	}
}

func TestRegistryUnknownChain(t *testing.T) {
	r := NewRegistry(testConfig())
	if _, ok := r.Provider(domrepo.NormalizeChain("Bitcoin")); ok {
		t.Fatalf("unknown chain must be rejected")
	}
}

func TestSolanaAddressValidation(t *testing.T) {
	c := NewSolanaClient(testConfig())
	// 32-byte base58 mint (wrapped SOL)
	if err := c.ValidateAddress("So11111111111111111111111111111111111111112"); err != nil {
		t.Fatalf("valid mint rejected: %v", err)
	}
	for _, bad := range []string{"", "0xabc", "notbase58!!!", "abc"} {
		if err := c.ValidateAddress(bad); err == nil {
			t.Fatalf("address %q should fail validation", bad)
		}
	}
}

func TestEthereumAddressValidation(t *testing.T) {
	c := NewEthereumClient(testConfig())
	for _, good := range []string{"0xabc", "0xdAC17F958D2ee523a2206206994597C13D831ec7"} {
		if err := c.ValidateAddress(good); err != nil {
			t.Fatalf("address %q rejected: %v", good, err)
		}
	}
	for _, bad := range []string{"", "0x", "dAC17F958D2ee523a2206206994597C13D831ec7", "0xzzz"} {
		if err := c.ValidateAddress(bad); err == nil {
			t.Fatalf("address %q should fail validation", bad)
		}
	}
}

func TestCosmosAddressValidation(t *testing.T) {
	c := NewCosmosClient(testConfig())
	for _, good := range []string{"uatom", "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "cosmos1x5wgh6vwye60wv3dtshs9dmqggwfx2ldnqvev0"} {
		if err := c.ValidateAddress(good); err != nil {
			t.Fatalf("address %q rejected: %v", good, err)
		}
	}
	for _, bad := range []string{"", "cosmos1", "Cosmos1x5wGH6"} {
		if err := c.ValidateAddress(bad); err == nil {
			t.Fatalf("address %q should fail validation", bad)
		}
	}
}
