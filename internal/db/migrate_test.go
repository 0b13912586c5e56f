package db

import (
	"path/filepath"
	"testing"
)

func TestConnectAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urms_test.db")
	gormDB, err := Connect(path)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if err := AutoMigrate(gormDB); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	for _, table := range []string{"rake_events", "truck_assignments", "cases", "activity_log"} {
		if !gormDB.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}
}

func TestConnect_EmptyPath(t *testing.T) {
	if _, err := Connect(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestAllModels(t *testing.T) {
	if got := len(AllModels()); got != 4 {
		t.Errorf("AllModels() returned %d models, want 4", got)
	}
}
