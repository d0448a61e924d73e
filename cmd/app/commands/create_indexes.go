package commands

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sijosaji/kitchensink/internal/app"
	"github.com/sijosaji/kitchensink/internal/config"
	"github.com/sijosaji/kitchensink/internal/database"
)

// RunCreateIndexes creates the MongoDB indexes and exits.
// Safe to run repeatedly; existing indexes are left untouched.
func RunCreateIndexes(ctx context.Context) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	db, err := container.MongoDatabase()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return createIndexes(ctx, db, logger)
}

func createIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	logger.Info("creating indexes", slog.String("database", db.Name()))

	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		return err
	}

	logger.Info("indexes created successfully", slog.Int("count", len(database.Indexes())))
	return nil
}
