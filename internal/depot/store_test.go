package depot

import (
	"strings"
	"testing"

	"github.com/skathpalia/urms/internal/ledger"
	"github.com/skathpalia/urms/internal/models"
	"github.com/skathpalia/urms/internal/risk"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStore creates a Store backed by an in-memory SQLite database.
func testStore(t *testing.T) *Store {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&models.RakeEvent{},
		&models.TruckAssignment{},
		&models.ExceptionCase{},
		&models.ActivityLogEntry{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewStore(gormDB)
}

func TestUpsertRake_LastWriteWins(t *testing.T) {
	s := testStore(t)

	first, err := s.UpsertRake(RakeInput{
		RakeID:         "R1",
		FNR:            "10000001",
		CurrentStation: "PLANT-01",
		Wagons: []ledger.Wagon{
			{WagonNo: "W001", Status: ledger.StatusPending},
			{WagonNo: "W002", Status: ledger.StatusPending},
		},
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.RakeID != "R1" {
		t.Errorf("RakeID = %q", first.RakeID)
	}

	if _, err := s.UpsertRake(RakeInput{
		RakeID:         "R1",
		FNR:            "10000002",
		CurrentStation: "JN-EAST",
		Wagons: []ledger.Wagon{
			{WagonNo: "W001", Status: ledger.StatusUnloaded},
		},
	}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	all, err := s.ListRakes()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d rakes, want exactly 1", len(all))
	}

	got, err := s.GetRake("R1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FNR != "10000002" {
		t.Errorf("FNR = %q, want second write", got.FNR)
	}
	if got.CurrentStation != "JN-EAST" {
		t.Errorf("CurrentStation = %q, want second write", got.CurrentStation)
	}
	if got.WagonLedger != "W001:UNLOADED" {
		t.Errorf("WagonLedger = %q, want full replacement", got.WagonLedger)
	}
}

func TestUpsertRake_RequiresID(t *testing.T) {
	s := testStore(t)
	if _, err := s.UpsertRake(RakeInput{}); err == nil {
		t.Fatal("expected error for empty rake ID")
	}
}

func TestUpsertRake_LogsActivity(t *testing.T) {
	s := testStore(t)
	if _, err := s.UpsertRake(RakeInput{RakeID: "R7", CurrentStation: "PLANT-01"}); err != nil {
		t.Fatal(err)
	}

	entries, err := s.RecentActivity(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d activity entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != models.LevelInfo || e.Source != "FOIS_SIM" {
		t.Errorf("entry = %s/%s, want INFO/FOIS_SIM", e.Level, e.Source)
	}
	if !strings.Contains(e.Message, "R7") {
		t.Errorf("message %q does not mention the rake", e.Message)
	}
}

func TestGetRake_NotFound(t *testing.T) {
	s := testStore(t)
	got, err := s.GetRake("NOPE")
	if err != nil {
		t.Fatalf("missing rake must not error, got: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestCreateAssignment_NoReferentialCheck(t *testing.T) {
	s := testStore(t)

	// R-GHOST was never created; the insert must still succeed.
	a, err := s.CreateAssignment("R-GHOST", []string{"TRK-101", "TRK-102"}, "Yard-A", "Resolve backlog")
	if err != nil {
		t.Fatalf("create assignment failed: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated ID")
	}
	if a.TruckIDs != "TRK-101,TRK-102" {
		t.Errorf("TruckIDs = %q", a.TruckIDs)
	}

	got, err := s.GetAssignment(a.ID)
	if err != nil {
		t.Fatalf("get assignment failed: %v", err)
	}
	if got == nil || got.RakeID != "R-GHOST" {
		t.Errorf("got %+v", got)
	}
	if trucks := SplitTrucks(got.TruckIDs); len(trucks) != 2 || trucks[0] != "TRK-101" {
		t.Errorf("SplitTrucks = %v, want order preserved", trucks)
	}
}

func TestCreateAssignment_Validation(t *testing.T) {
	s := testStore(t)
	if _, err := s.CreateAssignment("", []string{"TRK-1"}, "", ""); err == nil {
		t.Error("expected error for empty rake ID")
	}
	if _, err := s.CreateAssignment("R1", nil, "", ""); err == nil {
		t.Error("expected error for empty truck list")
	}
}

func TestListAssignments_NewestFirst(t *testing.T) {
	s := testStore(t)
	for _, rake := range []string{"R1", "R2", "R3"} {
		if _, err := s.CreateAssignment(rake, []string{"TRK-1"}, "Yard-A", "test"); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListAssignments(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d assignments, want limit of 2", len(list))
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Error("assignments not ordered newest first")
	}
}

func TestCreateCase(t *testing.T) {
	s := testStore(t)

	exc, err := s.CreateCase(CaseInput{
		RakeID:     "R-GHOST",
		WagonNo:    "W004",
		Type:       models.CaseDamage,
		ReportedBy: "depot_user_01",
		Details:    "dented door",
	})
	if err != nil {
		t.Fatalf("create case failed: %v", err)
	}
	if !strings.HasPrefix(exc.CaseID, "CASE-") {
		t.Errorf("CaseID = %q, want CASE- prefix", exc.CaseID)
	}
	if len(exc.CaseID) != len("CASE-")+8 {
		t.Errorf("CaseID = %q, want 8-char fragment", exc.CaseID)
	}

	got, err := s.GetCase(exc.CaseID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.CaseType != models.CaseDamage {
		t.Errorf("got %+v", got)
	}

	// Case creation logs a WARN entry.
	entries, err := s.RecentActivity(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Level != models.LevelWarn || entries[0].Source != "CASE" {
		t.Errorf("activity = %+v", entries)
	}
}

func TestCreateCase_InvalidType(t *testing.T) {
	s := testStore(t)
	if _, err := s.CreateCase(CaseInput{RakeID: "R1", Type: "EXPLOSION"}); err == nil {
		t.Fatal("expected error for invalid case type")
	}
}

func TestGetCase_NotFound(t *testing.T) {
	s := testStore(t)
	got, err := s.GetCase("CASE-missing")
	if err != nil || got != nil {
		t.Errorf("GetCase = %+v, %v; want nil, nil", got, err)
	}
}

func TestRecentActivity_NewestFirstWithLimit(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 5; i++ {
		if err := s.LogActivity(models.LevelInfo, "TEST", "entry"); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.RecentActivity(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ID < entries[1].ID {
		t.Error("activity not ordered newest first")
	}
}

func TestSummarize(t *testing.T) {
	event := models.RakeEvent{
		RakeID:      "R1",
		WagonLedger: "W001:UNLOADED;W002:PENDING;W003:PENDING",
	}
	sum := Summarize(event)
	if sum.Pending != 2 || sum.Unloaded != 1 {
		t.Errorf("counts = %d pending / %d unloaded", sum.Pending, sum.Unloaded)
	}
	if sum.Tier != risk.TierLow || sum.ProjectedCost != 0 {
		t.Errorf("risk = %s/%d, want LOW/0", sum.Tier, sum.ProjectedCost)
	}

	busy := models.RakeEvent{RakeID: "R2", WagonLedger: encodeN(35)}
	sum = Summarize(busy)
	if sum.Tier != risk.TierHigh || sum.ProjectedCost != 35*820 {
		t.Errorf("risk = %s/%d, want HIGH/%d", sum.Tier, sum.ProjectedCost, 35*820)
	}
}

// encodeN builds a ledger with n pending wagons.
func encodeN(n int) string {
	ws := make([]ledger.Wagon, n)
	for i := range ws {
		ws[i] = ledger.Wagon{WagonNo: "W" + string(rune('A'+i%26)), Status: ledger.StatusPending}
	}
	return ledger.Encode(ws)
}
