package models

import (
	"encoding/json"
	"time"
)

// ErrorResult replaces a section's payload when its analysis branch failed.
// Error carries a stable short code, Details the underlying cause.
type ErrorResult struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// SectionOutcome is the tagged result of one analysis branch: either a
// payload or an ErrorResult, never both. It serializes to whichever side
// is set, so a response section degrades to the error shape in place.
type SectionOutcome struct {
	Value interface{}
	Err   *ErrorResult
}

// OK wraps a successful section payload.
func OK(v interface{}) SectionOutcome { return SectionOutcome{Value: v} }

// Failed wraps a section failure.
func Failed(code, details string) SectionOutcome {
	return SectionOutcome{Err: &ErrorResult{Error: code, Details: details}}
}

func (o SectionOutcome) IsErr() bool { return o.Err != nil }

func (o SectionOutcome) MarshalJSON() ([]byte, error) {
	if o.Err != nil {
		return json.Marshal(o.Err)
	}
	return json.Marshal(o.Value)
}

// PredictionResult is the market-performance section of a successful
// price analysis.
type PredictionResult struct {
	PredictedPrice  float64  `json:"predicted_price"`
	ConfidenceScore float64  `json:"confidence_score"`
	PriceTrends     []string `json:"price_trends"`
	VolatilityIndex float64  `json:"volatility_index"`
}

// RiskAssessment is the risk section payload.
type RiskAssessment struct {
	RiskLevel   float64  `json:"risk_level"` // 0 (benign) .. 1 (severe)
	Rating      string   `json:"rating"`     // "low", "moderate", "high"
	RiskFactors []string `json:"risk_factors"`
	Liquidity   float64  `json:"liquidity"`
	Volatility  float64  `json:"volatility"`
}

// AnalysisResponse is the assembled per-request document. Built once after
// all requested branches complete, stamped with the completion time, and
// never persisted.
type AnalysisResponse struct {
	TokenMetadata     map[string]interface{} `json:"token_metadata"`
	MarketPerformance SectionOutcome         `json:"market_performance"`
	RiskAssessment    SectionOutcome         `json:"risk_assessment"`
	Recommendations   SectionOutcome         `json:"recommendations"`
	Timestamp         time.Time              `json:"timestamp"`
}
