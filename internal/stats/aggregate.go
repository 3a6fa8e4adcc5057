package stats

import (
	"sort"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"
)

// Totals holds the aggregate figures for one date range.
type Totals struct {
	Distance int64
	FuelUsed float64
	FuelCost float64
}

// MonthRange returns the inclusive bounds of a calendar month in local time:
// the first day at 00:00:00 through the last day at 23:59:59.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// inRange reports whether t falls within [since, until], both inclusive.
func inRange(t, since, until time.Time) bool {
	return !t.Before(since) && !t.After(until)
}

// Aggregate computes fuel used, fuel cost, and distance driven over the
// inclusive range [since, until]. Distance is the last in-range odometer
// reading minus the first (sorted by time); with fewer than two readings in
// range it is 0. This is the single-month distance rule; cross-month ranges
// use AggregateYearToDate instead.
func Aggregate(v *model.Vehicle, since, until time.Time) Totals {
	var t Totals
	if v == nil {
		return t
	}

	for _, r := range v.Refuels {
		if inRange(r.RecordedAt, since, until) {
			t.FuelUsed += r.Volume
			t.FuelCost += r.Cost
		}
	}

	readings := readingsInRange(v.Odometer, since, until)
	if len(readings) >= 2 {
		t.Distance = readings[len(readings)-1].Value - readings[0].Value
	}
	return t
}

// AggregateYearToDate computes the totals from January 1 of now's year
// through the end of now's month. Distance is the sum of successive deltas
// between all readings in range rather than last-minus-first, so mid-year
// odometer corrections are not silently skipped.
func AggregateYearToDate(v *model.Vehicle, now time.Time) Totals {
	since, _ := MonthRange(now.Year(), time.January)
	_, until := MonthRange(now.Year(), now.Month())

	var t Totals
	if v == nil {
		return t
	}

	for _, r := range v.Refuels {
		if inRange(r.RecordedAt, since, until) {
			t.FuelUsed += r.Volume
			t.FuelCost += r.Cost
		}
	}

	readings := readingsInRange(v.Odometer, since, until)
	for i := 1; i < len(readings); i++ {
		t.Distance += readings[i].Value - readings[i-1].Value
	}
	return t
}

// AverageEconomy derives distance per fuel unit from totals, 0 when no fuel
// was recorded.
func AverageEconomy(t Totals) float64 {
	if t.FuelUsed <= 0 {
		return 0
	}
	return float64(t.Distance) / t.FuelUsed
}

// readingsInRange returns the readings within [since, until] sorted
// ascending by timestamp.
func readingsInRange(readings []model.OdometerReading, since, until time.Time) []model.OdometerReading {
	var out []model.OdometerReading
	for _, r := range readings {
		if inRange(r.RecordedAt, since, until) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out
}
