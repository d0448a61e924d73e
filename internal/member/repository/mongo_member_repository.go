// Package repository implements member persistence on MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/member/domain"
)

// MongoMemberRepository stores members in the members collection.
type MongoMemberRepository struct {
	members *mongo.Collection
}

// NewMongoMemberRepository creates a new MongoMemberRepository.
func NewMongoMemberRepository(db *mongo.Database) *MongoMemberRepository {
	return &MongoMemberRepository{
		members: db.Collection(domain.CollectionName),
	}
}

// Insert stores a new member.
func (r *MongoMemberRepository) Insert(ctx context.Context, member *domain.Member) error {
	_, err := r.members.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMemberAlreadyExists
		}
		return apperrors.Wrap(err, "failed to insert member")
	}
	return nil
}

// FindAll returns every member sorted by name.
func (r *MongoMemberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.members.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list members")
	}
	defer cursor.Close(ctx)

	members := make([]*domain.Member, 0)
	if err := cursor.All(ctx, &members); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode members")
	}
	return members, nil
}

// FindByID returns the member with the given ID.
func (r *MongoMemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail returns the member owning the given email.
func (r *MongoMemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoMemberRepository) findOne(ctx context.Context, filter bson.M) (*domain.Member, error) {
	var member domain.Member
	if err := r.members.FindOne(ctx, filter).Decode(&member); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find member")
	}
	return &member, nil
}

// Replace overwrites the stored member with the same ID.
func (r *MongoMemberRepository) Replace(ctx context.Context, member *domain.Member) error {
	result, err := r.members.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMemberAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update member")
	}
	if result.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// Delete removes the member with the given ID.
func (r *MongoMemberRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.members.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete member")
	}
	if result.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
