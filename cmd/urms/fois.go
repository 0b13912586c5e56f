package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/fois"
	"github.com/spf13/cobra"
)

func newFOISCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fois",
		Short: "Simulated FOIS feed commands",
	}

	cmd.AddCommand(newFOISSeedCmd())
	cmd.AddCommand(newFOISRunCmd())
	return cmd
}

func newFOISSeedCmd() *cobra.Command {
	var (
		configPath string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create random demo rakes",
		Long:  "Generates demo rakes the way the simulated FOIS feed would, and inserts them into the store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFOISSeed(cmd, configPath, count)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of rakes to create")
	return cmd
}

func runFOISSeed(cmd *cobra.Command, configPath string, count int) error {
	cfg, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	gen := fois.NewGenerator(cfg.FOIS)
	out := cmd.OutOrStdout()

	for i := 0; i < count; i++ {
		in := gen.Rake()
		event, err := store.UpsertRake(in)
		if err != nil {
			return err
		}
		sum := depot.Summarize(*event)
		fmt.Fprintf(out, "Created %s at %s (%d wagons, %d pending, risk %s)\n",
			event.RakeID, event.CurrentStation, len(sum.Wagons), sum.Pending, sum.Tier)
	}
	return nil
}

func newFOISRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulated feed on a schedule",
		Long:  "Runs the FOIS simulator until interrupted: each tick unloads wagons on active rakes and occasionally injects a new arrival. The schedule is a 5-field cron expression from config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFOISRun(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	return cmd
}

func runFOISRun(cmd *cobra.Command, configPath string) error {
	cfg, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	out := cmd.OutOrStdout()
	gen := fois.NewGenerator(cfg.FOIS)

	// One immediate tick so the yard is never empty at startup.
	if err := fois.Tick(store, gen, out); err != nil {
		return err
	}

	fmt.Fprintf(out, "FOIS simulator running on schedule %q\n", cfg.FOIS.Schedule)
	return fois.Run(ctx, store, gen, cfg.FOIS.Schedule, out)
}
