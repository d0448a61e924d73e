package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	memberDomain "github.com/sijosaji/kitchensink/internal/member/domain"
)

// IndexDefinition defines a MongoDB index.
type IndexDefinition struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptions
}

// Indexes returns every index the service relies on.
// The unique email index is what turns duplicate registrations into conflicts.
func Indexes() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: memberDomain.CollectionName,
			Keys:       bson.D{{Key: "email", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Collection: memberDomain.CollectionName,
			Keys:       bson.D{{Key: "name", Value: 1}},
			Options:    options.Index().SetName("name_asc"),
		},
	}
}

// EnsureIndexes creates the indexes in db. Creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	indexes := Indexes()

	for _, idx := range indexes {
		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.Keys,
			Options: idx.Options,
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.Collection, err)
		}
		logger.Info("index ensured",
			slog.String("collection", idx.Collection),
			slog.String("index", name))
	}

	return nil
}
