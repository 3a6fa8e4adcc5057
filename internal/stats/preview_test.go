package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/theirongolddev/tanklog/internal/model"
)

func previewVehicle(t *testing.T) *model.Vehicle {
	t.Helper()
	o1 := reading(10000, at(t, "2025-03-01 09:00"))
	o2 := reading(10400, at(t, "2025-03-10 09:00"))
	o3 := reading(10900, at(t, "2025-03-20 09:00"))

	return &model.Vehicle{
		Refuels: []model.RefuelEvent{
			refuel(40, 60, o1.RecordedAt, false, &o1),
			refuel(32, 48, o2.RecordedAt, false, &o2),
			refuel(8, 12, at(t, "2025-03-15 09:00"), true, nil), // no odometer
			refuel(25, 38, o3.RecordedAt, false, &o3),
		},
	}
}

func TestLatestEconomyPreviews_NewestFirst(t *testing.T) {
	previews := LatestEconomyPreviews(previewVehicle(t), 10)
	if len(previews) != 4 {
		t.Fatalf("got %d previews, want 4", len(previews))
	}

	for i := 1; i < len(previews); i++ {
		if previews[i].RecordedAt.After(previews[i-1].RecordedAt) {
			t.Errorf("previews out of order at index %d", i)
		}
	}

	// Newest refuel: 10900 against the nearest older linked reading 10400,
	// skipping the linkless partial in between.
	if got, want := previews[0].Economy, 500.0/25.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("newest economy = %.4f, want %.4f", got, want)
	}

	// The linkless refuel still appears, with economy 0.
	if previews[1].Economy != 0 {
		t.Errorf("linkless refuel economy = %.4f, want 0", previews[1].Economy)
	}
	if previews[1].Volume != 8 {
		t.Errorf("linkless refuel volume = %.1f, want 8", previews[1].Volume)
	}

	// Oldest refuel has no older reference, so economy 0.
	if previews[3].Economy != 0 {
		t.Errorf("oldest economy = %.4f, want 0", previews[3].Economy)
	}
}

func TestLatestEconomyPreviews_Limit(t *testing.T) {
	previews := LatestEconomyPreviews(previewVehicle(t), 2)
	if len(previews) != 2 {
		t.Fatalf("got %d previews, want 2", len(previews))
	}
	if previews[0].Volume != 25 {
		t.Errorf("first preview volume = %.1f, want newest refuel (25)", previews[0].Volume)
	}
}

func TestLatestEconomyPreviews_NegativeDeltaClampsToZero(t *testing.T) {
	o1 := reading(500, at(t, "2025-03-01 09:00"))
	o2 := reading(300, at(t, "2025-03-10 09:00")) // corrected downwards

	v := &model.Vehicle{
		Refuels: []model.RefuelEvent{
			refuel(40, 60, o1.RecordedAt, false, &o1),
			refuel(35, 52, o2.RecordedAt, false, &o2),
		},
	}

	previews := LatestEconomyPreviews(v, 10)
	if previews[0].Economy != 0 {
		t.Errorf("economy after backwards odometer = %.4f, want 0", previews[0].Economy)
	}
}

func TestLatestEconomyPreviews_Idempotent(t *testing.T) {
	v := previewVehicle(t)
	a := LatestEconomyPreviews(v, 10)
	b := LatestEconomyPreviews(v, 10)
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls on the same snapshot returned different previews")
	}
}

func TestLatestEconomyPreviews_Degenerate(t *testing.T) {
	if got := LatestEconomyPreviews(nil, 5); got != nil {
		t.Errorf("nil vehicle: got %v, want nil", got)
	}
	if got := LatestEconomyPreviews(previewVehicle(t), 0); got != nil {
		t.Errorf("zero limit: got %v, want nil", got)
	}
}
