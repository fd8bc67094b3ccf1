// Package di provides dependency injection type definitions.
package di

import (
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/database"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/alerts"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/market"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/portfolio"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/profiles"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/recommendation"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/riskprofile"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/scheduler"
)

// Container holds all dependencies for the application.
//
// It is created by Wire() and handed to the CLI commands.
//
// Architecture:
//   - Database: a single SQLite profile store (financial profiles, portfolios, risk profile versions)
//   - Repositories: data access over the profile store
//   - Services: risk scoring, catalog, portfolio analysis, recommendations, alerts
//   - Jobs: cron scheduler with the alert sweep and WAL maintenance
type Container struct {
	// Database
	DB *database.DB

	// Repositories
	Profiles profiles.Repository

	// Market data
	MarketConditions *catalog.MarketConditions
	MarketDeriver    *market.Deriver
	Market           domain.MarketDataProvider

	// Services
	Catalog         *catalog.Catalog
	Calculator      *riskprofile.Calculator
	RiskProfiles    *riskprofile.Service
	Analyzer        *portfolio.Analyzer
	Recommendations *recommendation.Engine
	Alerts          *alerts.Service
}

// JobInstances holds the registered background jobs
type JobInstances struct {
	Scheduler      *scheduler.Scheduler
	AlertSweep     *scheduler.AlertSweepJob
	WALCheckpoints *scheduler.CheckWALCheckpointsJob
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
