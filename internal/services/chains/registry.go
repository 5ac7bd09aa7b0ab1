package chains

import (
	"ChainLens/internal/domain/models"
	domrepo "ChainLens/internal/domain/repository"
	"ChainLens/pkg/config"
)

// ChainStatus describes availability of a chain for analysis.
type ChainStatus string

const (
	StatusActive     ChainStatus = "active"
	StatusComingSoon ChainStatus = "coming_soon"
)

// ChainInfo is the public listing entry for one chain.
type ChainInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type entry struct {
	info     ChainInfo
	provider domrepo.TokenDataProvider
}

// Registry maps chain identifiers to their data providers and statuses.
// Reserved chains are listed but hold no provider, so analysis requests
// against them fail validation before any pipeline work.
type Registry struct {
	order []string
	byID  map[string]entry
}

// NewRegistry wires the currently supported chains plus the reserved
// polkadot slot.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{byID: make(map[string]entry)}
	r.add(ChainInfo{ID: string(domrepo.ChainSolana), Name: "Solana", Status: string(StatusActive)}, NewSolanaClient(cfg))
	r.add(ChainInfo{ID: string(domrepo.ChainEthereum), Name: "Ethereum", Status: string(StatusActive)}, NewEthereumClient(cfg))
	r.add(ChainInfo{ID: string(domrepo.ChainCosmos), Name: "Cosmos", Status: string(StatusActive)}, NewCosmosClient(cfg))
	r.add(ChainInfo{ID: string(domrepo.ChainPolkadot), Name: "Polkadot", Status: string(StatusComingSoon)}, nil)
	return r
}

// NewRegistryWith builds a registry from explicit providers; reserved
// entries carry a nil provider.
func NewRegistryWith(infos []ChainInfo, providers map[string]domrepo.TokenDataProvider) *Registry {
	r := &Registry{byID: make(map[string]entry)}
	for _, info := range infos {
		r.add(info, providers[info.ID])
	}
	return r
}

func (r *Registry) add(info ChainInfo, p domrepo.TokenDataProvider) {
	r.order = append(r.order, info.ID)
	r.byID[info.ID] = entry{info: info, provider: p}
}

// WrapProviders decorates every active provider, e.g. with a caching layer.
func (r *Registry) WrapProviders(wrap func(domrepo.TokenDataProvider) domrepo.TokenDataProvider) {
	for id, e := range r.byID {
		if e.provider != nil {
			e.provider = wrap(e.provider)
			r.byID[id] = e
		}
	}
}

// Provider returns the data provider for an active chain.
func (r *Registry) Provider(chain domrepo.ChainType) (domrepo.TokenDataProvider, bool) {
	e, ok := r.byID[string(chain)]
	if !ok || e.provider == nil || e.info.Status != string(StatusActive) {
		return nil, false
	}
	return e.provider, true
}

// List returns all registered chains in registration order.
func (r *Registry) List() []ChainInfo {
	out := make([]ChainInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].info)
	}
	return out
}

// recordFrom assembles a TokenDataRecord from a wire response, stamping
// chain and address so downstream sections can echo token identity.
func recordFrom(chain, address string, td *tokenDataResponse) *models.TokenDataRecord {
	meta := td.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	if _, ok := meta["chain"]; !ok {
		meta["chain"] = chain
	}
	if _, ok := meta["address"]; !ok {
		meta["address"] = address
	}
	return &models.TokenDataRecord{
		ChainType:     chain,
		TokenAddress:  address,
		Metadata:      meta,
		PriceHistory:  td.PriceHistory,
		VolumeHistory: td.VolumeHistory,
		LiquidityData: td.LiquidityData,
	}
}
