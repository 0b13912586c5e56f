package main

import (
	"strings"
	"testing"
)

func TestCaseCreate(t *testing.T) {
	cfgPath := initTestDB(t)

	out, err := runCmd(t, "case", "create", "-c", cfgPath,
		"--rake", "RAKE-001", "--wagon", "W003", "--type", "SHORTAGE", "--details", "2 bags short")
	if err != nil {
		t.Fatalf("case create failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Case created: CASE-") {
		t.Errorf("output = %s", out)
	}
}

func TestCaseCreate_TypeCaseInsensitive(t *testing.T) {
	cfgPath := initTestDB(t)

	out, err := runCmd(t, "case", "create", "-c", cfgPath,
		"--rake", "R1", "--type", "damage")
	if err != nil {
		t.Fatalf("case create failed: %v\n%s", err, out)
	}

	out, err = runCmd(t, "case", "list", "-c", cfgPath)
	if err != nil {
		t.Fatalf("case list failed: %v", err)
	}
	if !strings.Contains(out, "DAMAGE") {
		t.Errorf("expected normalized type in listing: %s", out)
	}
	// Empty --details falls back to a placeholder.
	if !strings.Contains(out, "Auto note") {
		t.Errorf("expected default details: %s", out)
	}
}

func TestCaseCreate_InvalidType(t *testing.T) {
	cfgPath := initTestDB(t)

	_, err := runCmd(t, "case", "create", "-c", cfgPath, "--rake", "R1", "--type", "SPILLAGE")
	if err == nil {
		t.Fatal("expected error for invalid case type")
	}
	if !strings.Contains(err.Error(), "SPILLAGE") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestCaseList_NewestFirst(t *testing.T) {
	cfgPath := initTestDB(t)

	if out, err := runCmd(t, "case", "create", "-c", cfgPath, "--rake", "R1", "--type", "SHORTAGE"); err != nil {
		t.Fatalf("create failed: %v\n%s", err, out)
	}
	if out, err := runCmd(t, "case", "create", "-c", cfgPath, "--rake", "R2", "--type", "OTHER"); err != nil {
		t.Fatalf("create failed: %v\n%s", err, out)
	}

	out, err := runCmd(t, "case", "list", "-c", cfgPath)
	if err != nil {
		t.Fatalf("case list failed: %v", err)
	}
	if !strings.Contains(out, "CASE ID") {
		t.Errorf("missing table header: %s", out)
	}
	if !strings.Contains(out, "R1") || !strings.Contains(out, "R2") {
		t.Errorf("missing rows: %s", out)
	}
}

func TestCaseList_Empty(t *testing.T) {
	cfgPath := initTestDB(t)

	out, err := runCmd(t, "case", "list", "-c", cfgPath)
	if err != nil {
		t.Fatalf("case list failed: %v", err)
	}
	if !strings.Contains(out, "No cases found.") {
		t.Errorf("output = %s", out)
	}
}
