package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/skathpalia/urms/internal/config"
	"github.com/skathpalia/urms/internal/db"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the URMS database",
		Long:  "Creates the embedded SQLite database file and migrates all depot tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Loaded config for depot %q from %s\n", cfg.Depot, configPath)

	gormDB, err := db.Connect(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open store %s: %w", cfg.DB.Path, err)
	}
	fmt.Fprintf(out, "Opened store at %s\n", cfg.DB.Path)

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	fmt.Fprintln(out, "\nURMS database initialized successfully.")
	return nil
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete and re-initialize the URMS database",
		Long: `Deletes the embedded SQLite database file and re-creates it from config.

All rakes, assignments, cases and activity entries are lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes || force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt (alias for --yes)")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Loaded config for depot %q from %s\n", cfg.Depot, configPath)

	if !skipConfirm {
		if !confirmReset(cmd, cfg.DB.Path) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.Remove(cfg.DB.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", cfg.DB.Path, err)
	}
	fmt.Fprintf(out, "Deleted %s\n", cfg.DB.Path)

	gormDB, err := db.Connect(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open store %s: %w", cfg.DB.Path, err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	fmt.Fprintln(out, "\nURMS database reset successfully.")
	return nil
}

// confirmReset asks the user to type "yes" before destroying data.
func confirmReset(cmd *cobra.Command, path string) bool {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "WARNING: This will permanently delete all data in %q.\n", path)
	fmt.Fprintln(out, "This action cannot be undone.")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Type \"yes\" to confirm: ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	return strings.TrimSpace(scanner.Text()) == "yes"
}
