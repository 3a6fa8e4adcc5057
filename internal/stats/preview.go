package stats

import (
	"sort"

	"github.com/theirongolddev/tanklog/internal/model"
)

// LatestEconomyPreviews returns the most recent refuels paired with a simple
// per-refuel economy figure, newest first, at most limit entries. Each
// refuel's reference point is the nearest older refuel that has an odometer
// link; refuels without their own link still appear, with economy 0. The
// distance delta is floored at zero to absorb out-of-order corrections.
func LatestEconomyPreviews(v *model.Vehicle, limit int) []model.EconomyPreview {
	if v == nil || limit <= 0 {
		return nil
	}

	refuels := make([]model.RefuelEvent, len(v.Refuels))
	copy(refuels, v.Refuels)
	sort.Slice(refuels, func(i, j int) bool {
		return refuels[i].RecordedAt.After(refuels[j].RecordedAt)
	})

	if limit > len(refuels) {
		limit = len(refuels)
	}

	out := make([]model.EconomyPreview, 0, limit)
	for i := 0; i < limit; i++ {
		r := refuels[i]
		p := model.EconomyPreview{
			RecordedAt: r.RecordedAt,
			Volume:     r.Volume,
			Cost:       r.Cost,
		}

		if r.Odometer != nil {
			if prev, ok := previousOdometer(refuels, i); ok {
				driven := r.Odometer.Value - prev
				if driven < 0 {
					driven = 0
				}
				if r.Volume > 0 && driven > 0 {
					p.Economy = float64(driven) / r.Volume
				}
			}
		}
		out = append(out, p)
	}
	return out
}

// previousOdometer finds the odometer value of the nearest refuel older than
// refuels[i] that carries a link, skipping linkless ones.
func previousOdometer(refuels []model.RefuelEvent, i int) (int64, bool) {
	for j := i + 1; j < len(refuels); j++ {
		if refuels[j].Odometer != nil {
			return refuels[j].Odometer.Value, true
		}
	}
	return 0, false
}
