// Package teamstore persists team members and allocates their employee
// identifiers.
package teamstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/firmsite/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateEmpID is returned when a create collides with an existing
// employee ID, either supplied by the client or allocated concurrently.
var ErrDuplicateEmpID = errors.New("employee ID already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_members")}
}

// NextEmpID allocates the next sequential employee ID (EMP001, EMP002, ...)
// by reading the most recently created member and incrementing its numeric
// suffix. Two concurrent creations can compute the same number; the unique
// emp_id index is the backstop, and the losing insert surfaces as
// ErrDuplicateEmpID from Create.
func (s *Store) NextEmpID(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var last models.TeamMember
	err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "EMP001", nil
		}
		return "", err
	}

	next := 1
	if n, err := strconv.Atoi(strings.TrimPrefix(last.EmpID, "EMP")); err == nil {
		next = n + 1
	}
	return fmt.Sprintf("EMP%03d", next), nil
}

// Create inserts a team member. The employee ID is uppercased, or allocated
// via NextEmpID when absent. New members are always active.
func (s *Store) Create(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	if m.EmpID == "" {
		empID, err := s.NextEmpID(ctx)
		if err != nil {
			return models.TeamMember{}, err
		}
		m.EmpID = empID
	} else {
		m.EmpID = strings.ToUpper(m.EmpID)
	}

	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.IsActive = true
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.TeamMember{}, ErrDuplicateEmpID
		}
		return models.TeamMember{}, err
	}
	return m, nil
}

// ExistsByEmpID reports whether any member (active or not) holds empID.
func (s *Store) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"emp_id": strings.ToUpper(empID)})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetActiveByEmpID looks up an active member by employee ID. Soft-deleted
// members are invisible here.
func (s *Store) GetActiveByEmpID(ctx context.Context, empID string) (models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{
		"emp_id":    strings.ToUpper(empID),
		"is_active": true,
	}).Decode(&m)
	if err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// GetByEmpID looks up a member by employee ID regardless of active state.
// Update and delete paths use this so soft-deleted members can still be
// permanently removed.
func (s *Store) GetByEmpID(ctx context.Context, empID string) (models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"emp_id": strings.ToUpper(empID)}).Decode(&m)
	if err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// Filter narrows List results. Department and Role match case-insensitively
// as substrings; empty values (or "all") are skipped by the caller.
type Filter struct {
	Department string
	Role       string
	IsActive   bool
}

// List returns members matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.TeamMember, error) {
	filter := bson.M{"is_active": f.IsActive}
	if f.Department != "" {
		filter["department"] = bson.M{"$regex": f.Department, "$options": "i"}
	}
	if f.Role != "" {
		filter["role"] = bson.M{"$regex": f.Role, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Update applies the given field set to a member and returns the updated
// document. The updated_at timestamp is always refreshed.
func (s *Store) Update(ctx context.Context, empID string, set bson.M) (models.TeamMember, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.TeamMember
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"emp_id": strings.ToUpper(empID)},
		bson.M{"$set": set},
		opts,
	).Decode(&m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.TeamMember{}, ErrDuplicateEmpID
		}
		return models.TeamMember{}, err
	}
	return m, nil
}

// SoftDelete marks a member inactive. The document and its image asset stay.
func (s *Store) SoftDelete(ctx context.Context, empID string) error {
	_, err := s.Update(ctx, empID, bson.M{"is_active": false})
	return err
}

// Delete permanently removes a member. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, empID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"emp_id": strings.ToUpper(empID)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
