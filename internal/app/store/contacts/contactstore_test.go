package contactstore_test

import (
	"errors"
	"testing"

	contactstore "github.com/dalemusser/firmsite/internal/app/store/contacts"
	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/firmsite/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContact(email, service string) models.Contact {
	return models.Contact{
		FirstName: "Priya",
		LastName:  "Shah",
		MobileNo:  "9876543210",
		Email:     email,
		Service:   service,
		Query:     "Need help with compliance filings",
	}
}

func TestStore_Create_DefaultsPendingUnread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c, err := store.Create(ctx, newContact("priya@example.com", "Audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Status != models.ContactStatusPending {
		t.Errorf("status = %q, want pending", c.Status)
	}
	if c.IsRead {
		t.Error("expected new contact to be unread")
	}
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 25; i++ {
		fixtures.CreateContact(ctx, i)
	}

	page1, total, err := store.List(ctx, contactstore.Filter{}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 len = %d, want 10", len(page1))
	}

	page3, _, err := store.List(ctx, contactstore.Filter{}, paging.Params{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List page 3 failed: %v", err)
	}
	if len(page3) != 5 {
		t.Errorf("page 3 len = %d, want 5", len(page3))
	}

	// Newest first: page 1 leads with the latest insertion.
	if page1[0].LastName != "Contact24" {
		t.Errorf("page 1 starts with %q, want Contact24", page1[0].LastName)
	}
}

func TestStore_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, newContact("a@example.com", "Audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newContact("b@example.com", "Taxation")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.UpdateStatus(ctx, a.ID, models.ContactStatusResolved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if _, err := store.SetRead(ctx, a.ID, true); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}

	_, total, err := store.List(ctx, contactstore.Filter{Status: models.ContactStatusResolved}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("status filter total = %d, want 1", total)
	}

	unread := false
	_, total, err = store.List(ctx, contactstore.Filter{IsRead: &unread}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("isRead filter total = %d, want 1", total)
	}

	_, total, err = store.List(ctx, contactstore.Filter{Service: "tax"}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("service filter total = %d, want 1", total)
	}

	_, total, err = store.List(ctx, contactstore.Filter{Search: "b@example"}, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("search total = %d, want 1", total)
	}
}

func TestStore_StatusBreakdownAndUnread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, newContact("a@example.com", "Audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newContact("b@example.com", "Audit")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.UpdateStatus(ctx, a.ID, models.ContactStatusClosed); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if _, err := store.SetRead(ctx, a.ID, true); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}

	breakdown, err := store.StatusBreakdown(ctx)
	if err != nil {
		t.Fatalf("StatusBreakdown failed: %v", err)
	}
	if breakdown[models.ContactStatusPending] != 1 || breakdown[models.ContactStatusClosed] != 1 {
		t.Errorf("breakdown = %v", breakdown)
	}
	// Zero statuses are still present in the map.
	if _, ok := breakdown[models.ContactStatusResolved]; !ok {
		t.Error("expected resolved key in breakdown")
	}

	unread, err := store.CountUnread(ctx)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread = %d, want 1", unread)
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, newContact("a@example.com", "Audit")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if _, err := store.Create(ctx, newContact("b@example.com", "Taxation")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
	if stats.Unread != 4 {
		t.Errorf("unread = %d, want 4", stats.Unread)
	}
	if len(stats.TopServices) != 2 || stats.TopServices[0].ID != "Audit" || stats.TopServices[0].Count != 3 {
		t.Errorf("topServices = %v", stats.TopServices)
	}
	if len(stats.MonthlyTrend) != 1 || stats.MonthlyTrend[0].Count != 4 {
		t.Errorf("monthlyTrend = %v", stats.MonthlyTrend)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c, err := store.Create(ctx, newContact("a@example.com", "Audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, c.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := store.GetByID(ctx, c.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}
