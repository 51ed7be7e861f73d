package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for seeding test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateBlog inserts a published blog with the given title and content.
func (f *Fixtures) CreateBlog(ctx context.Context, title, content string) models.Blog {
	f.t.Helper()

	now := time.Now().UTC()
	b := models.Blog{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Content:     content,
		Author:      "Test Author",
		Tags:        []string{},
		IsPublished: true,
		ReadTime:    1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "blogs", b)
	return b
}

// CreateService inserts an active service with a placeholder image.
func (f *Fixtures) CreateService(ctx context.Context, name string) models.Service {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Service{
		ID:             primitive.NewObjectID(),
		ServiceName:    name,
		Image:          "https://cdn.example.com/services/test.jpg",
		ImagePublicID:  "services/2026/01/test",
		Description:    "Test service description",
		DetailBenefits: []string{"Benefit one"},
		Beneficiary:    "Small businesses",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.insert(ctx, "services", s)
	return s
}

// CreateTeamMember inserts an active team member with the given empId.
// CreatedAt is offset by seq seconds so insertion order is reflected in
// creation time, which the empId allocator depends on.
func (f *Fixtures) CreateTeamMember(ctx context.Context, empID string, seq int) models.TeamMember {
	f.t.Helper()

	now := time.Now().UTC().Add(time.Duration(seq) * time.Second)
	m := models.TeamMember{
		ID:            primitive.NewObjectID(),
		EmpID:         empID,
		Name:          "Test Member",
		Qualification: []string{"CA"},
		Experience:    5,
		Expertise:     []string{"Taxation"},
		Role:          "Associate",
		Info:          "Test info",
		AboutMe:       "Test about me",
		Image: models.TeamImage{
			PublicID: "team/2026/01/" + empID,
			URL:      "https://cdn.example.com/team/" + empID + ".jpg",
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "team_members", m)
	return m
}

// CreateClientageCategory inserts a category with the folded shadow name set.
func (f *Fixtures) CreateClientageCategory(ctx context.Context, name string, clientTypes ...string) models.ClientageCategory {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.ClientageCategory{
		ID:             primitive.NewObjectID(),
		CategoryName:   name,
		CategoryNameCI: text.Fold(name),
		ClientTypes:    clientTypes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.insert(ctx, "clientage_categories", c)
	return c
}

// CreateContact inserts a pending, unread contact inquiry. The index makes
// each inquiry's email unique-ish and its creation time strictly ordered.
func (f *Fixtures) CreateContact(ctx context.Context, index int) models.Contact {
	f.t.Helper()

	now := time.Now().UTC().Add(time.Duration(index) * time.Second)
	c := models.Contact{
		ID:        primitive.NewObjectID(),
		FirstName: "Test",
		LastName:  fmt.Sprintf("Contact%d", index),
		MobileNo:  "9876543210",
		Email:     fmt.Sprintf("contact%d@example.com", index),
		Service:   "Audit",
		Query:     "Need help with the annual audit",
		Status:    models.ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "contacts", c)
	return c
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}
