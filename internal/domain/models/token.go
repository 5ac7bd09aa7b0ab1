package models

// TokenDataRecord is the raw on-chain market snapshot for one token,
// input to every analysis branch. The three histories share a cadence but
// are not guaranteed equal length; consumers must tolerate mismatches and
// empty series. A record is built fresh per request and never mutated.
type TokenDataRecord struct {
	ChainType     string                 `json:"chain_type"`
	TokenAddress  string                 `json:"token_address"`
	Metadata      map[string]interface{} `json:"metadata"`
	PriceHistory  []float64              `json:"price_history"`
	VolumeHistory []float64              `json:"volume_history"`
	LiquidityData []float64              `json:"liquidity_data"`
}

// LastPrice returns the most recent price, or 0 if the history is empty.
func (r *TokenDataRecord) LastPrice() float64 {
	if len(r.PriceHistory) == 0 {
		return 0
	}
	return r.PriceHistory[len(r.PriceHistory)-1]
}
