package teamstore_test

import (
	"errors"
	"testing"

	teamstore "github.com/dalemusser/firmsite/internal/app/store/team"
	"github.com/dalemusser/firmsite/internal/app/system/indexes"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/dalemusser/firmsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newMember(empID string) models.TeamMember {
	return models.TeamMember{
		EmpID:         empID,
		Name:          "Asha Rao",
		Qualification: []string{"CA"},
		Experience:    8,
		Expertise:     []string{"Taxation", "Audit"},
		Role:          "Partner",
		Info:          "Leads the tax practice",
		AboutMe:       "Fifteen years across direct and indirect tax",
		Image: models.TeamImage{
			PublicID: "team/2026/01/asha",
			URL:      "https://cdn.example.com/team/asha.jpg",
		},
	}
}

func TestStore_Create_AllocatesSequentialEmpID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, newMember(""))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.EmpID != "EMP001" {
		t.Errorf("first empId = %q, want EMP001", first.EmpID)
	}
	if !first.IsActive {
		t.Error("expected new member to be active")
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	second, err := store.Create(ctx, newMember(""))
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if second.EmpID != "EMP002" {
		t.Errorf("second empId = %q, want EMP002", second.EmpID)
	}
}

func TestStore_Create_ContinuesFromExistingMax(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeamMember(ctx, "EMP007", 0)

	m, err := store.Create(ctx, newMember(""))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if m.EmpID != "EMP008" {
		t.Errorf("empId = %q, want EMP008", m.EmpID)
	}
}

func TestStore_Create_UppercasesSuppliedEmpID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, newMember("emp042"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if m.EmpID != "EMP042" {
		t.Errorf("empId = %q, want EMP042", m.EmpID)
	}
}

func TestStore_Create_DuplicateEmpID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := store.Create(ctx, newMember("EMP010")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, newMember("emp010"))
	if !errors.Is(err, teamstore.ErrDuplicateEmpID) {
		t.Errorf("expected ErrDuplicateEmpID, got %v", err)
	}
}

func TestStore_SoftDelete_HidesFromActiveLookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, newMember("EMP020"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SoftDelete(ctx, m.EmpID); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// Invisible to the active lookup...
	if _, err := store.GetActiveByEmpID(ctx, m.EmpID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments from active lookup, got %v", err)
	}

	// ...and to the default list filter...
	members, err := store.List(ctx, teamstore.Filter{IsActive: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected no active members, got %d", len(members))
	}

	// ...but still present in the collection.
	got, err := store.GetByEmpID(ctx, m.EmpID)
	if err != nil {
		t.Fatalf("GetByEmpID failed: %v", err)
	}
	if got.IsActive {
		t.Error("expected member to be inactive")
	}
}

func TestStore_Delete_RemovesDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, newMember("EMP030"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, m.EmpID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	if _, err := store.GetByEmpID(ctx, m.EmpID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tax := newMember("EMP101")
	tax.Department = "Taxation"
	if _, err := store.Create(ctx, tax); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	audit := newMember("EMP102")
	audit.Department = "Audit"
	audit.Role = "Associate"
	if _, err := store.Create(ctx, audit); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byDept, err := store.List(ctx, teamstore.Filter{Department: "tax", IsActive: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byDept) != 1 || byDept[0].EmpID != "EMP101" {
		t.Errorf("department filter returned %v", byDept)
	}

	byRole, err := store.List(ctx, teamstore.Filter{Role: "associate", IsActive: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byRole) != 1 || byRole[0].EmpID != "EMP102" {
		t.Errorf("role filter returned %v", byRole)
	}
}

func TestStore_Update_ChangesOnlySuppliedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, newMember("EMP040"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, m.EmpID, bson.M{"role": "Senior Partner"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Role != "Senior Partner" {
		t.Errorf("role = %q, want Senior Partner", updated.Role)
	}
	if updated.Name != m.Name {
		t.Errorf("name changed unexpectedly: %q", updated.Name)
	}
	if !updated.UpdatedAt.After(m.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := newMember("EMP201")
	a.Department = "Taxation"
	a.Experience = 10
	if _, err := store.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	b := newMember("EMP202")
	b.Department = "Taxation"
	b.Experience = 6
	if _, err := store.Create(ctx, b); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	c := newMember("EMP203")
	c.Department = "Audit"
	c.Experience = 2
	if _, err := store.Create(ctx, c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SoftDelete(ctx, "EMP203"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalMembers != 2 {
		t.Errorf("totalMembers = %d, want 2", stats.TotalMembers)
	}
	if len(stats.DepartmentStats) != 1 || stats.DepartmentStats[0].ID != "Taxation" || stats.DepartmentStats[0].Count != 2 {
		t.Errorf("departmentStats = %v", stats.DepartmentStats)
	}
	if stats.AverageExperience != 8 {
		t.Errorf("averageExperience = %v, want 8", stats.AverageExperience)
	}
}
