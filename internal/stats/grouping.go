package stats

import (
	"sort"

	"github.com/theirongolddev/tanklog/internal/model"
)

// ConsumptionGroups chains refuels into consumption groups: every run of
// partial fills plus the full fill that closes it forms one group, because a
// trustworthy volume-to-distance ratio only exists between two full-tank
// reference points. Trailing partials with no closing full fill yet are
// returned as a final, still-open group.
func ConsumptionGroups(refuels []model.RefuelEvent) [][]model.RefuelEvent {
	sorted := make([]model.RefuelEvent, len(refuels))
	copy(sorted, refuels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	var groups [][]model.RefuelEvent
	var current []model.RefuelEvent
	for _, r := range sorted {
		current = append(current, r)
		if !r.Partial {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// GroupConsumption computes the economy figure for one consumption group:
// distance covered since prevOdometer divided by the summed volume of the
// group. prevOdometer is the odometer value preceding the group's first
// refuel; nil when no such reading exists.
//
// Returns false when the figure is undefined: no preceding reading, the
// group's closing refuel has no odometer link, the odometer did not strictly
// increase, or the summed volume is not positive. No rounding is applied.
func GroupConsumption(group []model.RefuelEvent, prevOdometer *int64) (float64, bool) {
	if len(group) == 0 || prevOdometer == nil {
		return 0, false
	}
	last := group[len(group)-1]
	if last.Odometer == nil {
		return 0, false
	}
	end := last.Odometer.Value
	if end <= *prevOdometer {
		return 0, false
	}
	var volume float64
	for _, r := range group {
		volume += r.Volume
	}
	if volume <= 0 {
		return 0, false
	}
	return float64(end-*prevOdometer) / volume, true
}

// GroupEconomy is one closed (or open) consumption group with its figure.
type GroupEconomy struct {
	Refuels  []model.RefuelEvent
	Volume   float64
	Distance int64
	Economy  float64
	Open     bool // trailing group not yet closed by a full fill
	Valid    bool // Economy is defined
}

// GroupEconomies computes the per-group figures for a vehicle. Each group's
// preceding odometer value is the closing odometer of the previous group, or
// nil for the first group (whose economy is therefore undefined).
func GroupEconomies(v *model.Vehicle) []GroupEconomy {
	groups := ConsumptionGroups(v.Refuels)

	out := make([]GroupEconomy, 0, len(groups))
	var prev *int64
	for i, g := range groups {
		ge := GroupEconomy{Refuels: g, Open: i == len(groups)-1 && g[len(g)-1].Partial}
		for _, r := range g {
			ge.Volume += r.Volume
		}
		if econ, ok := GroupConsumption(g, prev); ok {
			ge.Economy = econ
			ge.Valid = true
			ge.Distance = g[len(g)-1].Odometer.Value - *prev
		}
		if last := g[len(g)-1]; last.Odometer != nil {
			val := last.Odometer.Value
			prev = &val
		}
		out = append(out, ge)
	}
	return out
}
