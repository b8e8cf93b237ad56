// Package main is the entry point for the jokebox API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"jokebox/src/app/server"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/hash"
	"jokebox/src/infra/logger"
	"jokebox/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Apply schema migrations before opening the pool
	if cfg.Database.Migrate {
		if err := db.Migrate(cfg.Database, log); err != nil {
			return err
		}
	}

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize adapters
	siteRepo := repo.NewPostgresRepository(pg, log)
	hasher := hash.NewBcryptHasher()

	// Create and run HTTP server
	srv := server.New(cfg, log, siteRepo, hasher)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
