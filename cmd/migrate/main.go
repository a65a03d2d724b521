package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/pageza/pantry-finder/backend/config"
	"github.com/pageza/pantry-finder/backend/internal/database"
	"github.com/pageza/pantry-finder/backend/internal/logging"
	"github.com/pageza/pantry-finder/backend/migrations"
)

func main() {
	dir := flag.String("dir", "", "read migrations from this directory instead of the built-in set")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}

	var files fs.FS = migrations.FS
	if *dir != "" {
		files = os.DirFS(*dir)
	}
	if err := database.RunMigrations(db, files); err != nil {
		logging.Fatal().Err(err).Msg("migration failed")
	}
	logging.Info().Msg("migrations complete")
}
