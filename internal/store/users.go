package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/api/internal/models"
)

type userStore struct {
	coll *mongo.Collection
}

func NewUsers(db *mongo.Database) Users {
	return &userStore{coll: db.Collection("users")}
}

func (s *userStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", email, err)
	}
	return &user, nil
}

// Upsert merges the given profile fields into the user identified by
// email, creating the document when none exists. The email field always
// tracks the filter, whatever the caller supplied in fields.
func (s *userStore) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*UpsertResult, error) {
	set := bson.M{"email": email}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}

	result, err := s.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %q: %w", email, err)
	}
	return &UpsertResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (s *userStore) SetRole(ctx context.Context, email, role string) (int64, error) {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to set role for %q: %w", email, err)
	}
	return result.MatchedCount, nil
}
