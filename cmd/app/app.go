package app

import (
	"context"
	"log"

	"pensees/internal/config"
	"pensees/internal/database"
	"pensees/internal/imagegen"
	"pensees/internal/ledger"
	"pensees/internal/repository"
	"pensees/internal/service"
	"pensees/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Could not initialize MinIO: %v", err)
	}

	// image generation is optional: without an API key the card endpoints
	// answer with a configuration error instead of failing startup
	var generator imagegen.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = imagegen.NewGeminiClient(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Could not initialize Gemini client: %v", err)
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, card generation disabled")
	}

	reactionLedger := ledger.New(ledger.NewFileStore(cfg.LedgerPath))

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, generator, reactionLedger)

	if err = services.Auth.BootstrapAdmin(context.Background()); err != nil {
		log.Fatalf("Could not bootstrap admin account: %v", err)
	}

	return db, repo, services
}
