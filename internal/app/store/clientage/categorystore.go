// Package categorystore persists clientage categories and their client types.
package categorystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/firmsite/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateCategoryName is returned when a create or rename collides with
// an existing category name, compared case-insensitively.
var ErrDuplicateCategoryName = errors.New("category name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clientage_categories")}
}

// Create inserts a category. The folded shadow of the name backs the unique
// index, so a case-variant duplicate surfaces as ErrDuplicateCategoryName.
func (s *Store) Create(ctx context.Context, c models.ClientageCategory) (models.ClientageCategory, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CategoryNameCI = text.Fold(c.CategoryName)
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.ClientTypes == nil {
		c.ClientTypes = []string{}
	}

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.ClientageCategory{}, ErrDuplicateCategoryName
		}
		return models.ClientageCategory{}, err
	}
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ClientageCategory, error) {
	var c models.ClientageCategory
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.ClientageCategory{}, err
	}
	return c, nil
}

// FindByNameCI looks up a category by name, case-insensitively.
func (s *Store) FindByNameCI(ctx context.Context, name string) (models.ClientageCategory, error) {
	var c models.ClientageCategory
	err := s.c.FindOne(ctx, bson.M{"category_name_ci": text.Fold(name)}).Decode(&c)
	if err != nil {
		return models.ClientageCategory{}, err
	}
	return c, nil
}

// List returns every category sorted by name.
func (s *Store) List(ctx context.Context) ([]models.ClientageCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := []models.ClientageCategory{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Update applies the given field set and returns the updated category. When
// the set renames the category, the folded shadow is refreshed alongside it
// and a collision maps to ErrDuplicateCategoryName.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.ClientageCategory, error) {
	if name, ok := set["category_name"].(string); ok {
		set["category_name_ci"] = text.Fold(name)
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.ClientageCategory
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.ClientageCategory{}, ErrDuplicateCategoryName
		}
		return models.ClientageCategory{}, err
	}
	return c, nil
}

// SetClientTypes replaces the category's client-type list.
func (s *Store) SetClientTypes(ctx context.Context, id primitive.ObjectID, clientTypes []string) (models.ClientageCategory, error) {
	if clientTypes == nil {
		clientTypes = []string{}
	}
	return s.Update(ctx, id, bson.M{"client_types": clientTypes})
}

// Delete removes a category. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
