package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vietmaphub/landmark-backend/internal/types"
)

// AutoMigrateAll converges the schema to the target shape. AutoMigrate creates
// absent tables and adds missing columns; it never drops or renames columns or
// narrows types, so it is safe to run any number of times.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Landmark{},
		&types.LandmarkMedia{},
	)
}

// EnsureIndexes creates, idempotently, the indexes the model tags do not cover.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_landmark_media_landmark_id
		ON landmark_media(landmark_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_landmark_media_landmark_id: %w", err)
	}
	return nil
}

func (s *PostgresService) MigrateAll() error {
	s.log.Info("Migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Table migration failed", "error", err)
		return err
	}
	if err := EnsureIndexes(s.db); err != nil {
		s.log.Error("Index migration failed", "error", err)
		return err
	}
	s.log.Info("Migrations completed")
	return nil
}
