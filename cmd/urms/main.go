package main

import (
	"fmt"
	"os"

	"github.com/skathpalia/urms/internal/config"
	"github.com/skathpalia/urms/internal/db"
	"github.com/skathpalia/urms/internal/depot"
	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urms",
		Short: "URMS — depot logistics assistant",
		Long:  "URMS tracks rake arrivals, wagon unloading, truck dispatch and demurrage risk for a depot.",
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newRakeCmd())
	cmd.AddCommand(newAssignCmd())
	cmd.AddCommand(newCaseCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newETACmd())
	cmd.AddCommand(newFOISCmd())
	cmd.AddCommand(newDashboardCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urms %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// connectFromConfig loads the config file and opens the depot store.
func connectFromConfig(configPath string) (*config.Config, *depot.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gormDB, err := db.Connect(cfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store %s: %w", cfg.DB.Path, err)
	}
	return cfg, depot.NewStore(gormDB), nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
