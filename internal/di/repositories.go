package di

import (
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/profiles"
)

// InitializeRepositories creates the repositories over the open database
func InitializeRepositories(container *Container, log zerolog.Logger) {
	container.Profiles = profiles.NewSQLiteRepository(container.DB.Conn(), log)
	log.Info().Msg("Repositories initialized")
}
