package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/models"
	"github.com/spf13/cobra"
)

func newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Exception case commands",
	}

	cmd.AddCommand(newCaseCreateCmd())
	cmd.AddCommand(newCaseListCmd())
	return cmd
}

func newCaseCreateCmd() *cobra.Command {
	var (
		configPath string
		rakeID     string
		wagonNo    string
		caseType   string
		reporter   string
		details    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a wagon-level exception",
		Long:  "Records an immutable exception case (SHORTAGE, DAMAGE, MISSING_WAGON or OTHER) against a rake and wagon.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaseCreate(cmd, configPath, rakeID, wagonNo, caseType, reporter, details)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().StringVar(&rakeID, "rake", "", "rake identifier (required)")
	cmd.Flags().StringVar(&wagonNo, "wagon", "", "wagon number")
	cmd.Flags().StringVar(&caseType, "type", "", "case type: SHORTAGE, DAMAGE, MISSING_WAGON, OTHER (required)")
	cmd.Flags().StringVar(&reporter, "reporter", "depot_user_01", "reporting actor identifier")
	cmd.Flags().StringVar(&details, "details", "", "free-text details")
	cmd.MarkFlagRequired("rake")
	cmd.MarkFlagRequired("type")
	return cmd
}

func runCaseCreate(cmd *cobra.Command, configPath, rakeID, wagonNo, caseType, reporter, details string) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	ct, err := models.ParseCaseType(caseType)
	if err != nil {
		return err
	}
	if details == "" {
		details = "Auto note"
	}

	exc, err := store.CreateCase(depot.CaseInput{
		RakeID:     rakeID,
		WagonNo:    wagonNo,
		Type:       ct,
		ReportedBy: reporter,
		Details:    details,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Case created: %s\n", exc.CaseID)
	return nil
}

func newCaseListCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exception cases",
		Long:  "Lists exception cases, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaseList(cmd, configPath, limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "number of cases to show")
	return cmd
}

func runCaseList(cmd *cobra.Command, configPath string, limit int) error {
	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	cases, err := store.ListCases(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cases) == 0 {
		fmt.Fprintln(out, "No cases found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CASE ID\tREPORTED\tRAKE\tWAGON\tTYPE\tBY\tDETAILS")
	for _, exc := range cases {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			exc.CaseID, exc.ReportedAt.Format("2006-01-02 15:04"),
			exc.RakeID, exc.WagonNo, exc.CaseType, exc.ReportedBy, exc.Details)
	}
	return w.Flush()
}
