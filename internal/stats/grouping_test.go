package stats

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"
)

// at parses a "2006-01-02 15:04" timestamp in local time.
func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

// reading builds an odometer reading.
func reading(value int64, ts time.Time) model.OdometerReading {
	return model.OdometerReading{Value: value, RecordedAt: ts}
}

// refuel builds a refuel event; odo may be nil.
func refuel(volume, cost float64, ts time.Time, partial bool, odo *model.OdometerReading) model.RefuelEvent {
	return model.RefuelEvent{Volume: volume, Cost: cost, RecordedAt: ts, Partial: partial, Odometer: odo}
}

func TestConsumptionGroups_SplitsAfterFullFill(t *testing.T) {
	refuels := []model.RefuelEvent{
		refuel(10, 15, at(t, "2025-03-04 09:00"), true, nil),
		refuel(40, 60, at(t, "2025-03-01 09:00"), false, nil),
		refuel(25, 38, at(t, "2025-03-06 09:00"), false, nil),
		refuel(38, 57, at(t, "2025-03-10 09:00"), false, nil),
	}

	groups := ConsumptionGroups(refuels)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	// Every event appears exactly once, groups are time-ordered, and every
	// group but a trailing open one ends with a full fill.
	total := 0
	var prev time.Time
	for gi, g := range groups {
		if len(g) == 0 {
			t.Fatalf("group %d is empty", gi)
		}
		for _, r := range g {
			total++
			if r.RecordedAt.Before(prev) {
				t.Fatalf("group %d out of order: %v before %v", gi, r.RecordedAt, prev)
			}
			prev = r.RecordedAt
		}
		if g[len(g)-1].Partial {
			t.Errorf("closed group %d does not end with a full fill", gi)
		}
	}
	if total != len(refuels) {
		t.Errorf("groups cover %d events, want %d", total, len(refuels))
	}

	if len(groups[1]) != 2 {
		t.Errorf("second group has %d events, want partial+full pair", len(groups[1]))
	}
}

func TestConsumptionGroups_TrailingPartialsStayOpen(t *testing.T) {
	refuels := []model.RefuelEvent{
		refuel(40, 60, at(t, "2025-03-01 09:00"), false, nil),
		refuel(8, 12, at(t, "2025-03-05 09:00"), true, nil),
		refuel(9, 13, at(t, "2025-03-08 09:00"), true, nil),
	}

	groups := ConsumptionGroups(refuels)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	open := groups[1]
	if len(open) != 2 || !open[len(open)-1].Partial {
		t.Errorf("trailing partial fills not kept as an open group: %+v", open)
	}
}

func TestConsumptionGroups_Empty(t *testing.T) {
	if groups := ConsumptionGroups(nil); len(groups) != 0 {
		t.Errorf("got %d groups from no refuels, want 0", len(groups))
	}
}

func TestGroupConsumption(t *testing.T) {
	end := reading(10500, at(t, "2025-03-10 09:00"))
	group := []model.RefuelEvent{
		refuel(10, 15, at(t, "2025-03-05 09:00"), true, nil),
		refuel(25, 38, at(t, "2025-03-10 09:00"), false, &end),
	}
	prev := int64(10000)

	got, ok := GroupConsumption(group, &prev)
	if !ok {
		t.Fatal("GroupConsumption reported undefined for a valid group")
	}
	want := 500.0 / 35.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("GroupConsumption = %.6f, want %.6f", got, want)
	}
}

func TestGroupConsumption_Undefined(t *testing.T) {
	ts := at(t, "2025-03-10 09:00")
	end := reading(300, ts)
	prevHigh := int64(500)
	prevOK := int64(100)

	cases := []struct {
		name  string
		group []model.RefuelEvent
		prev  *int64
	}{
		{"empty group", nil, &prevOK},
		{"no preceding reading", []model.RefuelEvent{refuel(25, 38, ts, false, &end)}, nil},
		{"no closing odometer link", []model.RefuelEvent{refuel(25, 38, ts, false, nil)}, &prevOK},
		{"odometer went backwards", []model.RefuelEvent{refuel(25, 38, ts, false, &end)}, &prevHigh},
		{"equal odometer", []model.RefuelEvent{refuel(25, 38, ts, false, &end)}, &end.Value},
	}
	for _, tc := range cases {
		if got, ok := GroupConsumption(tc.group, tc.prev); ok {
			t.Errorf("%s: GroupConsumption = %.4f, want undefined", tc.name, got)
		}
	}
}

func TestGroupEconomies_ChainsPrecedingOdometer(t *testing.T) {
	o1 := reading(10000, at(t, "2025-02-01 09:00"))
	o2 := reading(10400, at(t, "2025-02-20 09:00"))
	o3 := reading(10900, at(t, "2025-03-10 09:00"))

	v := &model.Vehicle{
		Refuels: []model.RefuelEvent{
			refuel(40, 60, o1.RecordedAt, false, &o1),
			refuel(32, 48, o2.RecordedAt, false, &o2),
			refuel(10, 15, at(t, "2025-03-05 09:00"), true, nil),
			refuel(25, 38, o3.RecordedAt, false, &o3),
		},
	}

	ge := GroupEconomies(v)
	if len(ge) != 3 {
		t.Fatalf("got %d group economies, want 3", len(ge))
	}

	// First group has no preceding reference.
	if ge[0].Valid {
		t.Error("first group reported a defined economy with no preceding odometer")
	}

	// Second: 400 km on 32 L.
	if !ge[1].Valid || math.Abs(ge[1].Economy-400.0/32.0) > 1e-9 {
		t.Errorf("second group economy = %+v, want 12.5", ge[1])
	}

	// Third: partial 10 L + full 25 L over 500 km.
	if !ge[2].Valid || math.Abs(ge[2].Economy-500.0/35.0) > 1e-9 {
		t.Errorf("third group economy = %+v, want %.4f", ge[2], 500.0/35.0)
	}
	if ge[2].Open {
		t.Error("closed group flagged open")
	}
}
