// Package blogstore persists blog posts.
package blogstore

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
	return &Store{c: db.Collection("blogs")}
}

// Create inserts a blog post and returns it with its assigned ID and
// timestamps.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Tags == nil {
		b.Tags = []string{}
	}

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var b models.Blog
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Filter narrows List results. Search matches title or content
// case-insensitively; Category matches case-insensitively but exactly.
type Filter struct {
	Category      string
	Search        string
	PublishedOnly bool
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.PublishedOnly {
		q["is_published"] = true
	}
	if f.Category != "" {
		q["category"] = bson.M{"$regex": "^" + f.Category + "$", "$options": "i"}
	}
	if f.Search != "" {
		q["$or"] = []bson.M{
			{"title": bson.M{"$regex": f.Search, "$options": "i"}},
			{"content": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return q
}

// List returns one page of posts matching the filter, newest first, along
// with the total match count.
func (s *Store) List(ctx context.Context, f Filter, p paging.Params) ([]models.Blog, int64, error) {
	query := f.query()

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

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// Update applies the given field set and returns the updated post.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Blog, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Delete removes a post. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Categories returns the distinct non-empty categories across published
// posts.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "category", bson.M{
		"is_published": true,
		"category":     bson.M{"$nin": bson.A{"", nil}},
	})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
