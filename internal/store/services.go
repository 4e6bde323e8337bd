package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/api/internal/models"
)

type serviceStore struct {
	coll *mongo.Collection
}

func NewServices(db *mongo.Database) Services {
	return &serviceStore{coll: db.Collection("services")}
}

func (s *serviceStore) FindAll(ctx context.Context) ([]models.Service, error) {
	return s.find(ctx)
}

// FindSummaries projects down to name and slots, which is all the public
// services listing exposes.
func (s *serviceStore) FindSummaries(ctx context.Context) ([]models.Service, error) {
	return s.find(ctx, options.Find().SetProjection(bson.M{"name": 1, "slots": 1}))
}

func (s *serviceStore) find(ctx context.Context, opts ...*options.FindOptions) ([]models.Service, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
