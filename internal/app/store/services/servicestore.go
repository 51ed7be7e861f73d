// Package servicestore persists the firm's service listings.
package servicestore

import (
	"context"
	"time"

	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// Create inserts a service. New services start active.
func (s *Store) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	now := time.Now().UTC()
	svc.ID = primitive.NewObjectID()
	svc.IsActive = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if svc.DetailBenefits == nil {
		svc.DetailBenefits = []string{}
	}

	if _, err := s.c.InsertOne(ctx, svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// List returns one page of services, newest first, with the total match
// count. A nil isActive returns services in both states.
func (s *Store) List(ctx context.Context, isActive *bool, p paging.Params) ([]models.Service, int64, error) {
	query := bson.M{}
	if isActive != nil {
		query["is_active"] = *isActive
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	services := []models.Service{}
	if err := cur.All(ctx, &services); err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

// Update applies the given field set and returns the updated service.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Service, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var svc models.Service
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&svc)
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// SetActive flips the active flag and returns the updated service.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (models.Service, error) {
	return s.Update(ctx, id, bson.M{"is_active": active})
}

// Delete removes a service. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
