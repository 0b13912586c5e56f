package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Truck assignment commands",
	}

	cmd.AddCommand(newAssignCreateCmd())
	cmd.AddCommand(newAssignListCmd())
	return cmd
}

func newAssignCreateCmd() *cobra.Command {
	var (
		configPath string
		rakeID     string
		trucks     string
		lane       string
		reason     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Assign trucks to a rake",
		Long:  "Records an immutable truck-assignment directive for a rake. The rake is not required to exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssignCreate(cmd, configPath, rakeID, trucks, lane, reason)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().StringVar(&rakeID, "rake", "", "rake identifier (required)")
	cmd.Flags().StringVar(&trucks, "trucks", "", "comma-separated truck IDs (required)")
	cmd.Flags().StringVar(&lane, "lane", "Yard-A", "yard lane the trucks dispatch from")
	cmd.Flags().StringVar(&reason, "reason", "Resolve backlog", "dispatch reason")
	cmd.MarkFlagRequired("rake")
	cmd.MarkFlagRequired("trucks")
	return cmd
}

func runAssignCreate(cmd *cobra.Command, configPath, rakeID, trucks, lane, reason string) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	var truckIDs []string
	for _, t := range strings.Split(trucks, ",") {
		if t = strings.TrimSpace(t); t != "" {
			truckIDs = append(truckIDs, t)
		}
	}

	assignment, err := store.CreateAssignment(rakeID, truckIDs, lane, reason)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Assigned %d trucks to %s. Task ID: %s\n",
		len(truckIDs), rakeID, assignment.ID)
	return nil
}

func newAssignListCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List truck assignments",
		Long:  "Lists truck assignments, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssignList(cmd, configPath, limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "number of assignments to show")
	return cmd
}

func runAssignList(cmd *cobra.Command, configPath string, limit int) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	assignments, err := store.ListAssignments(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(assignments) == 0 {
		fmt.Fprintln(out, "No assignments found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tRAKE\tTRUCKS\tLANE\tREASON")
	for _, a := range assignments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.RakeID, a.TruckIDs, a.LaneFrom, a.Reason)
	}
	return w.Flush()
}
