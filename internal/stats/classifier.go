// Package stats turns a vehicle's raw odometer, refuel, and maintenance
// records into period summaries and fuel-economy figures. Every function is a
// pure computation over the snapshot it is given; nothing here touches the
// store or mutates its inputs unless documented otherwise.
package stats

import (
	"sort"

	"github.com/theirongolddev/tanklog/internal/model"
)

const (
	// minClassifySamples is the history size below which partial-fill
	// detection stays disabled. A new vehicle has no volume baseline, so
	// every fill is assumed full until one exists.
	minClassifySamples = 3

	// partialThresholdRatio is the fraction of the average historical volume
	// below which a fill counts as partial.
	partialThresholdRatio = 0.70
)

// CanClassify reports whether sampleCount refuels are enough history for
// partial-fill inference.
func CanClassify(sampleCount int) bool {
	return sampleCount >= minClassifySamples
}

// AverageVolume returns the mean of the given volumes. The second return is
// false when there are too few samples to trust the average.
func AverageVolume(volumes []float64) (float64, bool) {
	if !CanClassify(len(volumes)) {
		return 0, false
	}
	var sum float64
	for _, v := range volumes {
		sum += v
	}
	return sum / float64(len(volumes)), true
}

// IsPartialFill reports whether a refuel of the given volume looks like a
// not-to-full fill, judged against the vehicle's historical volumes. With
// fewer than minClassifySamples history entries it always reports false.
func IsPartialFill(volume float64, history []float64) bool {
	avg, ok := AverageVolume(history)
	if !ok {
		return false
	}
	return volume < avg*partialThresholdRatio
}

// Reclassify re-runs partial-fill inference over the given refuels in
// chronological order, each one judged against the volumes recorded before
// it. Events the user has flagged manually keep their value. The input slice
// is updated in place; the returned count is the number of flags that changed.
func Reclassify(refuels []model.RefuelEvent) int {
	idx := make([]int, len(refuels))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return refuels[idx[a]].RecordedAt.Before(refuels[idx[b]].RecordedAt)
	})

	changed := 0
	history := make([]float64, 0, len(refuels))
	for _, i := range idx {
		r := &refuels[i]
		if !r.PartialManual {
			inferred := IsPartialFill(r.Volume, history)
			if inferred != r.Partial {
				r.Partial = inferred
				changed++
			}
		}
		history = append(history, r.Volume)
	}
	return changed
}
