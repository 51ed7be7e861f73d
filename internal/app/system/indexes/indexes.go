// Package indexes reconciles the Mongo indexes the API depends on. EnsureAll
// runs at startup; every ensure* function is idempotent.
//
// The unique indexes double as the correctness backstop for pre-insert
// uniqueness checks: the sequential empId allocator and the case-insensitive
// category-name check both race under concurrent creation, and the index
// turns the losing writer's insert into a duplicate-key error.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates the indexes for every collection, aggregating problems
// so startup can fail fast with the full picture.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureBlogs(ctx, db); err != nil {
		problems = append(problems, "blogs: "+err.Error())
	}
	if err := ensureServices(ctx, db); err != nil {
		problems = append(problems, "services: "+err.Error())
	}
	if err := ensureTeamMembers(ctx, db); err != nil {
		problems = append(problems, "team_members: "+err.Error())
	}
	if err := ensureClientageCategories(ctx, db); err != nil {
		problems = append(problems, "clientage_categories: "+err.Error())
	}
	if err := ensureContacts(ctx, db); err != nil {
		problems = append(problems, "contacts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureBlogs(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "blogs", []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
}

func ensureServices(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "services", []mongo.IndexModel{
		{Keys: bson.D{{Key: "service_name", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	})
}

func ensureTeamMembers(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "team_members", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "emp_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "department", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})
}

func ensureClientageCategories(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "clientage_categories", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

func ensureContacts(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "contacts", []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "is_read", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
}

func createIndexes(ctx context.Context, db *mongo.Database, coll string, models []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}
