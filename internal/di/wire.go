package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Wire initializes all dependencies and returns a fully configured container.
// Order of operations:
// 1. Initialize the database
// 2. Initialize repositories
// 3. Initialize services
// 4. Register jobs
//
// provider is optional; nil loads market data from the configured file.
func Wire(cfg *config.Config, provider domain.MarketDataProvider, log zerolog.Logger) (*Container, *JobInstances, error) {
	container, err := InitializeDatabases(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize databases: %w", err)
	}

	InitializeRepositories(container, log)

	if err := InitializeServices(container, cfg, provider, log); err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	jobs, err := RegisterJobs(container, cfg, log)
	if err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("failed to register jobs: %w", err)
	}

	log.Info().Msg("Dependency injection wiring completed successfully")

	return container, jobs, nil
}
