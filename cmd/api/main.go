package main

import (
	"os"

	"github.com/yigit/studentinfo/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/studentinfo/internal/server"
)

// @title Student Info API
// @version 1.0
// @description Backend service for listing, filtering and adding student records

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
