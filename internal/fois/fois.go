// Package fois simulates the upstream FOIS rail-network feed with randomly
// generated demo rakes. Nothing here talks to a real feed; it exists so the
// dashboard has moving data.
package fois

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/skathpalia/urms/internal/config"
	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/ledger"
)

// Generator produces demo rakes within configured bounds.
type Generator struct {
	stations  []string
	minWagons int
	maxWagons int
	rng       *rand.Rand
}

// NewGenerator builds a Generator from FOIS config, seeded from the clock.
func NewGenerator(cfg config.FOISConfig) *Generator {
	return &Generator{
		stations:  cfg.Stations,
		minWagons: cfg.MinWagons,
		maxWagons: cfg.MaxWagons,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Rake generates one demo rake: an 8-digit FNR, a RAKE-<fnr> identifier,
// W%03d wagon numbers with a small unloaded head, and an ETA a few hours out.
func (g *Generator) Rake() depot.RakeInput {
	fnr := fmt.Sprintf("%d", 10000000+g.rng.Intn(90000000))
	count := g.minWagons + g.rng.Intn(g.maxWagons-g.minWagons+1)
	unloaded := g.rng.Intn(count/4 + 1)

	wagons := make([]ledger.Wagon, count)
	for i := range wagons {
		status := ledger.StatusPending
		if i < unloaded {
			status = ledger.StatusUnloaded
		}
		wagons[i] = ledger.Wagon{WagonNo: fmt.Sprintf("W%03d", i+1), Status: status}
	}

	eta := time.Now().UTC().Add(time.Duration(1+g.rng.Intn(12)) * time.Hour)

	return depot.RakeInput{
		RakeID:         "RAKE-" + fnr,
		FNR:            fnr,
		CurrentStation: g.stations[g.rng.Intn(len(g.stations))],
		ETA:            &eta,
		Wagons:         wagons,
	}
}

// Advance marks up to n pending wagons as unloaded, in wagon order, and
// returns the updated list with the number actually unloaded.
func Advance(wagons []ledger.Wagon, n int) ([]ledger.Wagon, int) {
	out := make([]ledger.Wagon, len(wagons))
	copy(out, wagons)
	done := 0
	for i := range out {
		if done == n {
			break
		}
		if out[i].Status != ledger.StatusUnloaded {
			out[i].Status = ledger.StatusUnloaded
			done++
		}
	}
	return out, done
}
