package main

import (
	"fmt"
	"time"

	"github.com/skathpalia/urms/internal/eta"
	"github.com/skathpalia/urms/internal/models"
	"github.com/spf13/cobra"
)

func newETACmd() *cobra.Command {
	var (
		configPath string
		distance   float64
		speed      float64
		rakeID     string
	)

	cmd := &cobra.Command{
		Use:   "eta",
		Short: "Predict a rake's arrival time",
		Long: `Predicts minutes to arrival from remaining distance and average speed.

Non-positive speeds fall back to a default of 20 km/h. With --rake, the
prediction is recorded in the activity log against that rake.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runETA(cmd, configPath, distance, speed, rakeID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "urms.yaml", "path to URMS config file")
	cmd.Flags().Float64Var(&distance, "distance", 0, "remaining distance in km (required)")
	cmd.Flags().Float64Var(&speed, "speed", 30, "estimated average speed in km/h")
	cmd.Flags().StringVar(&rakeID, "rake", "", "rake to log the prediction against")
	cmd.MarkFlagRequired("distance")
	return cmd
}

func runETA(cmd *cobra.Command, configPath string, distance, speed float64, rakeID string) error {
	if distance <= 0 {
		return fmt.Errorf("distance must be positive")
	}

	minutes := eta.Predict(distance, speed)
	predicted := time.Now().UTC().Add(time.Duration(minutes) * time.Minute)

	fmt.Fprintf(cmd.OutOrStdout(), "Predicted ETA in %d minutes -> %s\n",
		minutes, predicted.Format("2006-01-02 15:04 UTC"))

	if rakeID == "" {
		return nil
	}

	_, store, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	return store.LogActivity(models.LevelInfo, "ETA", "Predicted ETA for "+rakeID)
}
