package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/joelburton/tboggle/assets"
	"github.com/joelburton/tboggle/internal/defs"
	"github.com/joelburton/tboggle/internal/dict"
	"github.com/joelburton/tboggle/internal/httpserver"
	"github.com/joelburton/tboggle/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := dict.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	words, nodes := dict.Stats()
	log.Info().Int("words", words).Int("nodes", nodes).Msg("dictionary ready")

	db, err := openDB(getEnv("DB_PATH", "./data/tboggle.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	seedDefinitions(db)

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting tboggle server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// seedDefinitions loads the embedded glossary into an empty defs table.
// Non-fatal: the server runs fine without definitions.
func seedDefinitions(db *sql.DB) {
	glossary, err := assets.Definitions()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse embedded definitions")
		return
	}
	if err := defs.NewStore(db).Seed(context.Background(), glossary); err != nil {
		log.Warn().Err(err).Msg("failed to seed definitions")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
