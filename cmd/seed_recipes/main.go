package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/uuid"

	"github.com/pageza/pantry-finder/backend/config"
	"github.com/pageza/pantry-finder/backend/internal/database"
	"github.com/pageza/pantry-finder/backend/internal/logging"
	"github.com/pageza/pantry-finder/backend/internal/seed"
)

func main() {
	source := flag.String("source", "recipes.json", "recipe catalog: a JSON file path or s3://bucket/key")
	ownerFlag := flag.String("owner", "", "owner user id (defaults to the seed account)")
	batchSize := flag.Int("batch", 100, "insert batch size")
	flag.Parse()
	if *batchSize < 1 {
		logging.Fatal().Int("batch", *batchSize).Msg("batch size must be at least 1")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	owner := seed.Owner
	if *ownerFlag != "" {
		if owner, err = uuid.Parse(*ownerFlag); err != nil {
			logging.Fatal().Err(err).Str("owner", *ownerFlag).Msg("invalid owner id")
		}
	}

	ctx := context.Background()
	data, err := seed.Read(ctx, *source, seed.S3Fetcher)
	if err != nil {
		logging.Fatal().Err(err).Str("source", *source).Msg("failed to read catalog")
	}
	recipes, err := seed.Decode(data, owner)
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid catalog")
	}

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := seed.Insert(ctx, db, recipes, *batchSize); err != nil {
		logging.Fatal().Err(err).Msg("failed to insert recipes")
	}
	logging.Info().Int("recipes", len(recipes)).Str("source", *source).Msg("catalog seeded")
}
