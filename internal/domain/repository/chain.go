package repository

import "strings"

// ChainType identifies a supported blockchain.
type ChainType string

const (
	ChainSolana   ChainType = "solana"
	ChainEthereum ChainType = "ethereum"
	ChainCosmos   ChainType = "cosmos"
	ChainPolkadot ChainType = "polkadot" // reserved, not yet active
)

// IsActiveChain returns true if c can serve analysis requests.
func IsActiveChain(c ChainType) bool {
	switch c {
	case ChainSolana, ChainEthereum, ChainCosmos:
		return true
	default:
		return false
	}
}

// NormalizeChain converts raw input to a canonical chain type. Unknown
// values pass through lowercased so callers can report them verbatim.
func NormalizeChain(s string) ChainType {
	return ChainType(strings.ToLower(strings.TrimSpace(s)))
}
