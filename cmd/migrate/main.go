// One-shot schema migrator. Converges the landmarks and landmark_media tables
// to the target schema; safe to re-run any number of times.
// Exits 0 on success, 1 on failure.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vietmaphub/landmark-backend/internal/db"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Migration failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.MigrateAll(); err != nil {
		log.Error("Migration failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
	log.Info("All migrations completed successfully")
}
