package stats

import (
	"testing"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"
)

func TestIsPartialFill_InsufficientHistory(t *testing.T) {
	cases := [][]float64{
		nil,
		{},
		{40},
		{40, 42},
	}
	for _, history := range cases {
		if IsPartialFill(1.0, history) {
			t.Errorf("IsPartialFill(1.0, %v) = true, want false with <3 samples", history)
		}
	}
}

func TestIsPartialFill_Threshold(t *testing.T) {
	// Average 40, threshold 28.
	history := []float64{40, 40, 40}

	cases := []struct {
		volume float64
		want   bool
	}{
		{10, true},
		{27.9, true},
		{28, false}, // exactly at threshold is a full fill
		{28.1, false},
		{40, false},
		{60, false},
	}
	for _, tc := range cases {
		if got := IsPartialFill(tc.volume, history); got != tc.want {
			t.Errorf("IsPartialFill(%.1f) = %v, want %v", tc.volume, got, tc.want)
		}
	}
}

func TestCanClassify(t *testing.T) {
	if CanClassify(2) {
		t.Error("CanClassify(2) = true, want false")
	}
	if !CanClassify(3) {
		t.Error("CanClassify(3) = false, want true")
	}
}

func TestAverageVolume(t *testing.T) {
	if _, ok := AverageVolume([]float64{40, 42}); ok {
		t.Error("AverageVolume with 2 samples reported ok")
	}

	avg, ok := AverageVolume([]float64{30, 40, 50})
	if !ok {
		t.Fatal("AverageVolume with 3 samples reported !ok")
	}
	if avg != 40 {
		t.Errorf("AverageVolume = %.2f, want 40", avg)
	}
}

func TestReclassify_SkipsManualFlags(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.Local)
	}

	refuels := []model.RefuelEvent{
		{Volume: 40, RecordedAt: day(1)},
		{Volume: 40, RecordedAt: day(2)},
		{Volume: 40, RecordedAt: day(3)},
		// Small fill with enough history: inferred partial.
		{Volume: 10, RecordedAt: day(4)},
		// Same volume but user said full: must stay full.
		{Volume: 10, RecordedAt: day(5), Partial: false, PartialManual: true},
	}

	changed := Reclassify(refuels)
	if changed != 1 {
		t.Fatalf("Reclassify changed %d flags, want 1", changed)
	}
	if !refuels[3].Partial {
		t.Error("inferred refuel not flagged partial")
	}
	if refuels[4].Partial {
		t.Error("manually flagged refuel was overwritten")
	}
}

func TestReclassify_UsesOnlyPriorHistory(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 12, 0, 0, 0, time.Local)
	}

	// The first three fills have no baseline yet, whatever their volume.
	refuels := []model.RefuelEvent{
		{Volume: 5, RecordedAt: day(1), Partial: false},
		{Volume: 50, RecordedAt: day(2), Partial: false},
		{Volume: 50, RecordedAt: day(3), Partial: false},
	}
	if changed := Reclassify(refuels); changed != 0 {
		t.Errorf("Reclassify changed %d flags with no usable history, want 0", changed)
	}
}
