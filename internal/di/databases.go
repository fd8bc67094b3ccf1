package di

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/database"
)

// InitializeDatabases opens the profile database and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	db, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileStandard,
		Name:    "profiles",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize profile database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate profile database: %w", err)
	}
	if err := db.QuickCheck(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile database is not reachable: %w", err)
	}
	container.DB = db

	log.Info().Str("path", db.Path()).Msg("Profile database initialized")
	return container, nil
}
