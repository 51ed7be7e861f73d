package blogstore_test

import (
	"errors"
	"testing"

	blogstore "github.com/dalemusser/firmsite/internal/app/store/blogs"
	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/firmsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Blog{
		Title:       "GST Filing Deadlines",
		Content:     "The quarterly filing calendar changed this year.",
		Author:      "Asha Rao",
		Category:    "Taxation",
		IsPublished: true,
		ReadTime:    1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.Tags == nil {
		t.Error("expected tags to default to empty slice")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("title = %q, want %q", got.Title, created.Title)
	}
}

func TestStore_List_PaginationAndFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 12; i++ {
		fixtures.CreateBlog(ctx, "Post", "Body text")
	}

	page1, total, err := store.List(ctx, blogstore.Filter{PublishedOnly: true}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 len = %d, want 10", len(page1))
	}

	page2, _, err := store.List(ctx, blogstore.Filter{PublishedOnly: true}, paging.Params{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(page2) != 2 {
		t.Errorf("page 2 len = %d, want 2", len(page2))
	}
}

func TestStore_List_SearchAndCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Blog{
		Title: "Audit Season Checklist", Content: "Prepare working papers early.",
		Author: "A", Category: "Audit", IsPublished: true, ReadTime: 1,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Blog{
		Title: "Payroll Basics", Content: "Audit trails matter for payroll too.",
		Author: "A", Category: "Advisory", IsPublished: true, ReadTime: 1,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Blog{
		Title: "Draft Post", Content: "Not published yet.",
		Author: "A", Category: "Audit", IsPublished: false, ReadTime: 1,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Search hits title of one post and content of another.
	bySearch, total, err := store.List(ctx, blogstore.Filter{Search: "audit", PublishedOnly: true}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(bySearch) != 2 {
		t.Errorf("search matched %d posts, want 2", total)
	}

	byCategory, total, err := store.List(ctx, blogstore.Filter{Category: "audit", PublishedOnly: true}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(byCategory) != 1 {
		t.Errorf("category filter matched %d posts, want 1", total)
	}

	// Unpublished posts show up only when PublishedOnly is off.
	_, total, err = store.List(ctx, blogstore.Filter{}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("unfiltered total = %d, want 3", total)
	}
}

func TestStore_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b, err := store.Create(ctx, models.Blog{
		Title: "Original", Content: "Body", Author: "A", IsPublished: false, ReadTime: 1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, b.ID, bson.M{"title": "Renamed", "is_published": true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Renamed" || !updated.IsPublished {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(b.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}

	deleted, err := store.Delete(ctx, b.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := store.GetByID(ctx, b.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.Blog{
		{Title: "A", Content: "x", Author: "A", Category: "Taxation", IsPublished: true, ReadTime: 1},
		{Title: "B", Content: "x", Author: "A", Category: "Taxation", IsPublished: true, ReadTime: 1},
		{Title: "C", Content: "x", Author: "A", Category: "Audit", IsPublished: true, ReadTime: 1},
		{Title: "D", Content: "x", Author: "A", Category: "Hidden", IsPublished: false, ReadTime: 1},
		{Title: "E", Content: "x", Author: "A", IsPublished: true, ReadTime: 1},
	}
	for _, b := range seed {
		if _, err := store.Create(ctx, b); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("categories = %v, want 2 entries", categories)
	}
	seen := map[string]bool{}
	for _, c := range categories {
		seen[c] = true
	}
	if !seen["Taxation"] || !seen["Audit"] {
		t.Errorf("categories = %v, want Taxation and Audit", categories)
	}
}
