package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/api/internal/models"
)

type doctorStore struct {
	coll *mongo.Collection
}

func NewDoctors(db *mongo.Database) Doctors {
	return &doctorStore{coll: db.Collection("doctors")}
}

func (s *doctorStore) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *doctorStore) Insert(ctx context.Context, doctor models.Doctor) (primitive.ObjectID, error) {
	doctor.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, doctor); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert doctor: %w", err)
	}
	return doctor.ID, nil
}

func (s *doctorStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor %q: %w", email, err)
	}
	return result.DeletedCount, nil
}
