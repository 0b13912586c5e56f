package dashboard

import (
	"sort"
	"time"

	"github.com/skathpalia/urms/internal/depot"
	"github.com/skathpalia/urms/internal/risk"
)

// KPI holds the headline numbers for the index page.
type KPI struct {
	TotalPending  int
	AvgUnloaded   float64
	ProjectedCost int
	RakeCount     int
}

// RakeRow holds one rake for the overview table.
type RakeRow struct {
	RakeID   string
	FNR      string
	Station  string
	Unloaded int
	Pending  int
	ETA      *time.Time
	Tier     risk.Tier
	Cost     int
}

// Overview derives the KPI rollup and the rake table, sorted by pending
// count descending. The sort is presentation only; the store itself promises
// no rake ordering.
func Overview(store *depot.Store) (KPI, []RakeRow, error) {
	events, err := store.ListRakes()
	if err != nil {
		return KPI{}, nil, err
	}

	var kpi KPI
	rows := make([]RakeRow, 0, len(events))
	totalUnloaded := 0
	for _, event := range events {
		sum := depot.Summarize(event)
		kpi.TotalPending += sum.Pending
		kpi.ProjectedCost += sum.ProjectedCost
		totalUnloaded += sum.Unloaded
		rows = append(rows, RakeRow{
			RakeID:   event.RakeID,
			FNR:      event.FNR,
			Station:  event.CurrentStation,
			Unloaded: sum.Unloaded,
			Pending:  sum.Pending,
			ETA:      event.ETA,
			Tier:     sum.Tier,
			Cost:     sum.ProjectedCost,
		})
	}
	kpi.RakeCount = len(events)
	if len(events) > 0 {
		kpi.AvgUnloaded = float64(totalUnloaded) / float64(len(events))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Pending > rows[j].Pending
	})
	return kpi, rows, nil
}

// RakeDetail loads one rake with its decoded ledger, risk, and recommended
// actions. A missing rake returns (nil, nil, nil).
func RakeDetail(store *depot.Store, rakeID string) (*depot.RakeSummary, []risk.Action, error) {
	event, err := store.GetRake(rakeID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, nil
	}
	sum := depot.Summarize(*event)
	return &sum, risk.Recommend(sum.Tier), nil
}
