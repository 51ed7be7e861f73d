package teamstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatCount is one grouped-count row. The _id key is kept on the wire so the
// payload matches the original API's aggregation output.
type StatCount struct {
	ID    string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// Stats summarizes the active team.
type Stats struct {
	TotalMembers      int64       `json:"totalMembers"`
	DepartmentStats   []StatCount `json:"departmentStats"`
	RoleStats         []StatCount `json:"roleStats"`
	AverageExperience float64     `json:"averageExperience"`
}

// Stats computes counts by department and role (descending) and the mean
// experience, all over active members only.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	out := Stats{
		DepartmentStats: []StatCount{},
		RoleStats:       []StatCount{},
	}

	total, err := s.c.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return Stats{}, err
	}
	out.TotalMembers = total

	if out.DepartmentStats, err = s.groupActive(ctx, "$department"); err != nil {
		return Stats{}, err
	}
	if out.RoleStats, err = s.groupActive(ctx, "$role"); err != nil {
		return Stats{}, err
	}

	avg, err := s.averageExperience(ctx)
	if err != nil {
		return Stats{}, err
	}
	out.AverageExperience = avg

	return out, nil
}

func (s *Store) groupActive(ctx context.Context, field string) ([]StatCount, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"is_active": true}},
		{"$group": bson.M{"_id": field, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []StatCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) averageExperience(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"is_active": true}},
		{"$group": bson.M{"_id": nil, "avg_exp": bson.M{"$avg": "$experience"}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var row struct {
		AvgExp float64 `bson:"avg_exp"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, err
		}
		return row.AvgExp, nil
	}
	if err := cur.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}
	return 0, nil
}
