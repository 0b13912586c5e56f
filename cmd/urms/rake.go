package main

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/ledger"
	"github.com/skathpalia/urms/internal/risk"
	"github.com/spf13/cobra"
)

func newRakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rake",
		Short: "Rake management commands",
	}

	cmd.AddCommand(newRakeCreateCmd())
	cmd.AddCommand(newRakeListCmd())
	cmd.AddCommand(newRakeShowCmd())
	return cmd
}

func newRakeCreateCmd() *cobra.Command {
	var (
		configPath string
		rakeID     string
		fnr        string
		station    string
		etaHours   float64
		wagonText  string
		count      int
		unloaded   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or replace a rake",
		Long: `Creates a rake record, or fully replaces it if the ID already exists.

Wagons are given either as ledger text via --wagons ("W001:PENDING;W002:UNLOADED")
or synthesized from --count and --unloaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRakeCreate(cmd, configPath, rakeCreateOpts{
				rakeID:    rakeID,
				fnr:       fnr,
				station:   station,
				etaHours:  etaHours,
				wagonText: wagonText,
				count:     count,
				unloaded:  unloaded,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().StringVar(&rakeID, "id", "", "rake identifier (required)")
	cmd.Flags().StringVar(&fnr, "fnr", "", "external FNR reference number")
	cmd.Flags().StringVar(&station, "station", "PLANT-01", "current station label")
	cmd.Flags().Float64Var(&etaHours, "eta-hours", 0, "declared ETA, hours from now (0 = none)")
	cmd.Flags().StringVar(&wagonText, "wagons", "", "wagon ledger text, e.g. \"W001:PENDING;W002:UNLOADED\"")
	cmd.Flags().IntVar(&count, "count", 12, "wagon count when synthesizing (ignored with --wagons)")
	cmd.Flags().IntVar(&unloaded, "unloaded", 0, "initially unloaded wagons when synthesizing")
	cmd.MarkFlagRequired("id")
	return cmd
}

type rakeCreateOpts struct {
	rakeID    string
	fnr       string
	station   string
	etaHours  float64
	wagonText string
	count     int
	unloaded  int
}

func runRakeCreate(cmd *cobra.Command, configPath string, opts rakeCreateOpts) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	var wagons []ledger.Wagon
	if opts.wagonText != "" {
		wagons = ledger.Decode(opts.wagonText)
	} else {
		for i := 1; i <= opts.count; i++ {
			status := ledger.StatusPending
			if i <= opts.unloaded {
				status = ledger.StatusUnloaded
			}
			wagons = append(wagons, ledger.Wagon{WagonNo: fmt.Sprintf("W%03d", i), Status: status})
		}
	}

	var eta *time.Time
	if opts.etaHours > 0 {
		t := time.Now().UTC().Add(time.Duration(opts.etaHours * float64(time.Hour)))
		eta = &t
	}

	event, err := store.UpsertRake(depot.RakeInput{
		RakeID:         opts.rakeID,
		FNR:            opts.fnr,
		CurrentStation: opts.station,
		ETA:            eta,
		Wagons:         wagons,
	})
	if err != nil {
		return err
	}

	sum := depot.Summarize(*event)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created rake %s (%d wagons, %d pending)\n", event.RakeID, len(sum.Wagons), sum.Pending)
	fmt.Fprintf(out, "D&W risk: %s (%s)\n", sum.Tier, formatINR(sum.ProjectedCost))
	return nil
}

func newRakeListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rakes",
		Long:  "Lists all rakes with unloading progress and derived risk, busiest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRakeList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	return cmd
}

func runRakeList(cmd *cobra.Command, configPath string) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	events, err := store.ListRakes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No rakes found.")
		return nil
	}

	sums := make([]depot.RakeSummary, len(events))
	for i, event := range events {
		sums[i] = depot.Summarize(event)
	}
	// Busiest rakes first; display order only.
	sort.SliceStable(sums, func(i, j int) bool { return sums[i].Pending > sums[j].Pending })

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RAKE ID\tFNR\tSTATION\tUNLOADED\tPENDING\tRISK\tPROJECTED\tETA")
	for _, sum := range sums {
		eta := "-"
		if sum.Event.ETA != nil {
			eta = sum.Event.ETA.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			sum.Event.RakeID, sum.Event.FNR, sum.Event.CurrentStation,
			sum.Unloaded, sum.Pending, sum.Tier, formatINR(sum.ProjectedCost), eta)
	}
	return w.Flush()
}

func newRakeShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <rake-id>",
		Short: "Show one rake in detail",
		Long:  "Shows a rake's wagons, unloading progress, risk estimate and recommended actions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRakeShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	return cmd
}

func runRakeShow(cmd *cobra.Command, configPath, rakeID string) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	event, err := store.GetRake(rakeID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if event == nil {
		fmt.Fprintf(out, "Rake %s not found.\n", rakeID)
		return nil
	}

	sum := depot.Summarize(*event)
	fmt.Fprintf(out, "Rake:     %s\n", event.RakeID)
	fmt.Fprintf(out, "FNR:      %s\n", event.FNR)
	fmt.Fprintf(out, "Station:  %s\n", event.CurrentStation)
	if event.ETA != nil {
		fmt.Fprintf(out, "ETA:      %s\n", event.ETA.Format("2006-01-02 15:04 MST"))
	}
	fmt.Fprintf(out, "Unloaded: %d / %d\n", sum.Unloaded, len(sum.Wagons))
	fmt.Fprintf(out, "D&W risk: %s (%s)\n", sum.Tier, formatINR(sum.ProjectedCost))

	fmt.Fprintln(out, "\nRecommended actions:")
	for _, a := range risk.Recommend(sum.Tier) {
		fmt.Fprintf(out, "  [%s] %s: %s\n", a.Urgency, a.Action, a.Detail)
	}

	fmt.Fprintln(out, "\nWagons:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WAGON\tSTATUS")
	for _, wagon := range sum.Wagons {
		fmt.Fprintf(w, "%s\t%s\n", wagon.WagonNo, wagon.Status)
	}
	return w.Flush()
}
