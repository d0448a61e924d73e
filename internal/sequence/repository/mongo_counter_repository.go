// Package repository implements counter persistence on MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/sequence/domain"
)

// MongoCounterRepository increments counters with a single findAndModify.
type MongoCounterRepository struct {
	counters *mongo.Collection
}

// NewMongoCounterRepository creates a repository over the sequences collection of db.
func NewMongoCounterRepository(db *mongo.Database) *MongoCounterRepository {
	return &MongoCounterRepository{
		counters: db.Collection(domain.CollectionName),
	}
}

// Increment atomically adds one to the named counter, creating it when absent,
// and returns the post-increment document.
// Returns domain.ErrCounterMissing if the store hands back no document.
func (r *MongoCounterRepository) Increment(ctx context.Context, name string) (*domain.Counter, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter domain.Counter
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCounterMissing
		}
		return nil, apperrors.Wrapf(err, "failed to increment sequence %s", name)
	}

	return &counter, nil
}
