package servicestore_test

import (
	"errors"
	"testing"

	servicestore "github.com/dalemusser/firmsite/internal/app/store/services"
	"github.com/dalemusser/firmsite/internal/app/system/paging"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/firmsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newService(name string) models.Service {
	return models.Service{
		ServiceName:    name,
		Image:          "https://cdn.example.com/services/" + name + ".jpg",
		ImagePublicID:  "services/2026/01/" + name,
		Description:    "Full-cycle " + name + " engagement",
		DetailBenefits: []string{"Benefit one", "Benefit two"},
		Beneficiary:    "Small businesses",
	}
}

func TestStore_Create_StartsActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := servicestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newService("audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created.IsActive {
		t.Error("expected new service to be active")
	}
	if created.ID.IsZero() || created.CreatedAt.IsZero() {
		t.Error("expected ID and timestamps to be set")
	}
}

func TestStore_List_ActiveFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := servicestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, newService("audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newService("taxation")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.SetActive(ctx, a.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	active := true
	services, total, err := store.List(ctx, &active, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(services) != 1 || services[0].ServiceName != "taxation" {
		t.Errorf("active list = %v (total %d), want just taxation", services, total)
	}

	_, total, err = store.List(ctx, nil, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("unfiltered total = %d, want 2", total)
	}
}

func TestStore_SetActive_Toggles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := servicestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, newService("advisory"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	off, err := store.SetActive(ctx, svc.ID, false)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if off.IsActive {
		t.Error("expected service to be inactive")
	}

	on, err := store.SetActive(ctx, svc.ID, true)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if !on.IsActive {
		t.Error("expected service to be active again")
	}
}

func TestStore_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := servicestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, newService("audit"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, svc.ID, bson.M{"description": "Updated scope"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Description != "Updated scope" {
		t.Errorf("description = %q", updated.Description)
	}
	if updated.ServiceName != svc.ServiceName {
		t.Errorf("service name changed unexpectedly: %q", updated.ServiceName)
	}

	deleted, err := store.Delete(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := store.GetByID(ctx, svc.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}
