//go:build wireinject
// +build wireinject

package di

import (
	"ChainLens/pkg/config"
	"ChainLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Analysis pipeline
		ProvideScorerParams,
		ProvideAnalyzers,

		// Chain data access
		ProvideRecordCache,
		ProvideRegistry,

		// Use cases
		ProvideAnalyzeUseCase,

		// HTTP edge and application server
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
