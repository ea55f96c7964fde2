package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/api"
	"github.com/luxdrop/storefront/internal/config"
	"github.com/luxdrop/storefront/internal/db"
	"github.com/luxdrop/storefront/internal/repository/postgres"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to database
	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	// Apply migrations
	if err := db.RunMigrations(conn, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Create repositories and router
	repos := postgres.NewRepositories(conn, logger)
	router := api.NewRouter(cfg, repos, logger)

	logger.Info("Starting storefront API",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
