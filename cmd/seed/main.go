package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/infrastructure/persistence"
	"github.com/aims/backend/internal/infrastructure/seed"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

func main() {
	var randSeed uint64
	flag.Uint64Var(&randSeed, "rand-seed", 0, "Seed for generated data (0 picks a random one)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database, logger.NewGormLogger(log, cfg.Log.GormLevel, cfg.Log.SlowThreshold))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	seeder := seed.New(seed.Repositories{
		Users:         persistence.NewGormUserRepository(db.DB),
		Categories:    persistence.NewGormCategoryRepository(db.DB),
		Manufacturers: persistence.NewGormManufacturerRepository(db.DB),
		Locations:     persistence.NewGormLocationRepository(db.DB),
		Assets:        persistence.NewGormAssetRepository(db.DB),
	}, cfg.Seed, log, seed.WithFaker(gofakeit.New(randSeed)))

	log.Info("Seeding database",
		zap.String("database", cfg.Database.DBName),
		zap.Int("users", cfg.Seed.Users),
		zap.Int("assets", cfg.Seed.Assets),
	)
	if _, err := seeder.Run(context.Background()); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
