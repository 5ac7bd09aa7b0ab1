package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

// Section names accepted in AnalyzeRequest.AnalysisType.
const (
	SectionPrice    = "price"
	SectionRisk     = "risk"
	SectionBehavior = "behavior"
)

type AnalyzeRequest struct {
	TokenAddress string   `json:"token_address" validate:"required"`
	ChainType    string   `json:"chain_type" validate:"required"`
	AnalysisType []string `json:"analysis_type" validate:"omitempty,dive,oneof=price risk behavior"`
}

// Wants reports whether a section was requested. An empty list means all.
func (r *AnalyzeRequest) Wants(section string) bool {
	if len(r.AnalysisType) == 0 {
		return true
	}
	for _, s := range r.AnalysisType {
		if s == section {
			return true
		}
	}
	return false
}
