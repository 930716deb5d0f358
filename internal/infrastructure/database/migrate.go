package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"todopro-server/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the todo domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.User{},
		&entities.Task{},
		&entities.Conversation{},
		&entities.Message{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
