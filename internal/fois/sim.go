package fois

import (
	"context"
	"fmt"
	"io"

	"github.com/robfig/cron/v3"
	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/ledger"
	"github.com/skathpalia/urms/internal/models"
)

// Sink is the slice of the depot store the simulator writes through.
type Sink interface {
	UpsertRake(in depot.RakeInput) (*models.RakeEvent, error)
	ListRakes() ([]models.RakeEvent, error)
}

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Run drives the simulated feed on the given cron schedule until ctx is
// cancelled. Each tick unloads a few wagons on every active rake and
// occasionally injects a fresh arrival.
func Run(ctx context.Context, store Sink, gen *Generator, schedule string, out io.Writer) error {
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("fois: invalid schedule %q: %w", schedule, err)
	}

	c := cron.New(cron.WithParser(cronParser))
	if _, err := c.AddFunc(schedule, func() {
		if err := Tick(store, gen, out); err != nil && out != nil {
			fmt.Fprintf(out, "tick error: %v\n", err)
		}
	}); err != nil {
		return fmt.Errorf("fois: schedule %q: %w", schedule, err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// Tick performs one simulation step: advance unloading on every rake with
// pending wagons, and with 1-in-4 odds (always, when the yard is empty)
// create a new demo rake.
func Tick(store Sink, gen *Generator, out io.Writer) error {
	rakes, err := store.ListRakes()
	if err != nil {
		return err
	}

	for _, event := range rakes {
		wagons := ledger.Decode(event.WagonLedger)
		if ledger.CountPending(wagons) == 0 {
			continue
		}
		advanced, done := Advance(wagons, 1+gen.rng.Intn(3))
		if _, err := store.UpsertRake(depot.RakeInput{
			RakeID:         event.RakeID,
			FNR:            event.FNR,
			CurrentStation: event.CurrentStation,
			ETA:            event.ETA,
			Wagons:         advanced,
			Raw:            event.Raw,
		}); err != nil {
			return err
		}
		if out != nil {
			fmt.Fprintf(out, "Unloaded %d wagons on %s\n", done, event.RakeID)
		}
	}

	if len(rakes) == 0 || gen.rng.Intn(4) == 0 {
		in := gen.Rake()
		if _, err := store.UpsertRake(in); err != nil {
			return err
		}
		if out != nil {
			fmt.Fprintf(out, "New rake %s arrived at %s (%d wagons)\n",
				in.RakeID, in.CurrentStation, len(in.Wagons))
		}
	}

	return nil
}
