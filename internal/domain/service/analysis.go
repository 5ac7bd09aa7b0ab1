package service

import (
	"context"

	"ChainLens/internal/domain/models"
)

// TokenAnalyzer is one independent analysis branch over a token-data
// record. Implementations must be total: any internal failure is downgraded
// to an error-tagged SectionOutcome, never a panic or an error return, so
// the aggregator can fan out without per-branch special cases.
type TokenAnalyzer interface {
	// Name returns the section this analyzer fills ("price", "risk", "behavior").
	Name() string
	Analyze(ctx context.Context, record *models.TokenDataRecord) models.SectionOutcome
}
