package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/skathpalia/urms/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newLogsCmd() *cobra.Command {
	var (
		configPath string
		level      string
		source     string
		follow     bool
		lines      int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "View the depot activity log",
		Long:  "Displays activity-log entries recorded by rake, assignment and case operations. Supports filtering by level or source, and a --follow mode for tailing new entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd, configPath, logsOpts{
				level:  level,
				source: source,
				follow: follow,
				lines:  lines,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().StringVar(&level, "level", "", "filter by level (INFO, WARN)")
	cmd.Flags().StringVar(&source, "source", "", "filter by source tag (FOIS_SIM, ASSIGN, CASE, ETA)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "tail mode — poll for new entries every 2s")
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of recent entries to show")
	return cmd
}

type logsOpts struct {
	level  string
	source string
	follow bool
	lines  int
}

func runLogs(cmd *cobra.Command, configPath string, opts logsOpts) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var entries []models.ActivityLogEntry
	if err := buildLogsQuery(store.DB(), opts).Order("id DESC").Limit(opts.lines).Find(&entries).Error; err != nil {
		return fmt.Errorf("query logs: %w", err)
	}

	// Reverse for chronological display.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	if len(entries) == 0 && !opts.follow {
		fmt.Fprintln(out, "No log entries found.")
		return nil
	}

	for _, e := range entries {
		printEntry(out, e)
	}

	if !opts.follow {
		return nil
	}

	// Follow mode: poll for new entries.
	var lastID uint
	if len(entries) > 0 {
		lastID = entries[len(entries)-1].ID
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var newEntries []models.ActivityLogEntry
			q := buildLogsQuery(store.DB(), opts).Where("id > ?", lastID).Order("id ASC")
			if err := q.Find(&newEntries).Error; err != nil {
				fmt.Fprintf(out, "poll error: %v\n", err)
				continue
			}
			for _, e := range newEntries {
				printEntry(out, e)
				lastID = e.ID
			}
		}
	}
}

// buildLogsQuery applies the optional level and source filters.
func buildLogsQuery(gormDB *gorm.DB, opts logsOpts) *gorm.DB {
	q := gormDB.Model(&models.ActivityLogEntry{})
	if opts.level != "" {
		q = q.Where("level = ?", opts.level)
	}
	if opts.source != "" {
		q = q.Where("source = ?", opts.source)
	}
	return q
}

func printEntry(out io.Writer, e models.ActivityLogEntry) {
	fmt.Fprintf(out, "%s  [%s] %-8s  %s\n",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Source, e.Message)
}
