package main

import (
	"os"

	"github.com/habtamu/memberdesk/internal/pkg/logger"
	"github.com/habtamu/memberdesk/internal/server"
)

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
