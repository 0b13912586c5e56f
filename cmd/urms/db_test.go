package main

import (
	"strings"
	"testing"
)

func TestDBCmd_Help(t *testing.T) {
	out, err := runCmd(t, "db", "--help")
	if err != nil {
		t.Fatalf("db --help failed: %v", err)
	}
	if !strings.Contains(out, "Database management") {
		t.Errorf("expected help to mention 'Database management', got: %s", out)
	}
	for _, sub := range []string{"init", "reset"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q subcommand, got: %s", sub, out)
		}
	}
}

func TestDBInit(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := runCmd(t, "db", "init", "-c", cfgPath)
	if err != nil {
		t.Fatalf("db init failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Migrated 4 tables") {
		t.Errorf("output = %s", out)
	}
	if !strings.Contains(out, "initialized successfully") {
		t.Errorf("output = %s", out)
	}
}

func TestDBInit_MissingConfig(t *testing.T) {
	_, err := runCmd(t, "db", "init", "-c", "/nonexistent/urms.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestDBReset_WithYes(t *testing.T) {
	cfgPath := initTestDB(t)

	// Write a rake, then reset; the rake must be gone.
	if out, err := runCmd(t, "rake", "create", "-c", cfgPath, "--id", "R1"); err != nil {
		t.Fatalf("rake create failed: %v\n%s", err, out)
	}
	out, err := runCmd(t, "db", "reset", "-c", cfgPath, "--yes")
	if err != nil {
		t.Fatalf("db reset failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "reset successfully") {
		t.Errorf("output = %s", out)
	}

	out, err = runCmd(t, "rake", "list", "-c", cfgPath)
	if err != nil {
		t.Fatalf("rake list failed: %v", err)
	}
	if !strings.Contains(out, "No rakes found.") {
		t.Errorf("expected empty store after reset, got: %s", out)
	}
}

func TestDBReset_AbortsWithoutConfirmation(t *testing.T) {
	cfgPath := initTestDB(t)

	cmd := newRootCmd()
	buf := new(strings.Builder)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("no\n"))
	cmd.SetArgs([]string{"db", "reset", "-c", cfgPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("db reset failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Aborted.") {
		t.Errorf("output = %s", buf.String())
	}
}
