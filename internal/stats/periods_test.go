package stats

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"
)

func findPeriod(t *testing.T, rows []model.PeriodStats, p model.Period) model.PeriodStats {
	t.Helper()
	for _, r := range rows {
		if r.Period == p {
			return r
		}
	}
	t.Fatalf("period %v missing from report", p)
	return model.PeriodStats{}
}

func TestReport_FivePeriodsInOrder(t *testing.T) {
	rows := Report(&model.Vehicle{}, at(t, "2025-03-20 09:00"))
	want := []model.Period{
		model.PeriodCurrentMonth,
		model.PeriodLastMonth,
		model.PeriodYearToDate,
		model.PeriodAllTime,
		model.PeriodProjectedYear,
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, p := range want {
		if rows[i].Period != p {
			t.Errorf("row %d = %v, want %v", i, rows[i].Period, p)
		}
	}
}

func TestReport_LastMonthRollsAcrossYearBoundary(t *testing.T) {
	v := &model.Vehicle{
		Refuels: []model.RefuelEvent{
			refuel(42, 63, at(t, "2024-12-15 09:00"), false, nil),
		},
	}

	rows := Report(v, at(t, "2025-01-10 09:00"))
	last := findPeriod(t, rows, model.PeriodLastMonth)
	if last.FuelUsed != 42 {
		t.Errorf("LastMonth FuelUsed = %.1f, want 42 (December of previous year)", last.FuelUsed)
	}
}

func TestReport_AllTime(t *testing.T) {
	v := &model.Vehicle{
		Odometer: []model.OdometerReading{
			reading(52000, at(t, "2025-03-01 09:00")),
			reading(40000, at(t, "2023-05-01 09:00")),
		},
		Refuels: []model.RefuelEvent{
			refuel(40, 60, at(t, "2023-06-01 09:00"), false, nil),
			refuel(38, 55, at(t, "2024-06-01 09:00"), false, nil),
		},
	}

	rows := Report(v, at(t, "2025-03-20 09:00"))
	all := findPeriod(t, rows, model.PeriodAllTime)
	if all.Distance != 12000 {
		t.Errorf("AllTime Distance = %d, want 12000", all.Distance)
	}
	if all.FuelUsed != 78 {
		t.Errorf("AllTime FuelUsed = %.1f, want 78", all.FuelUsed)
	}
	if all.FuelCost != 115 {
		t.Errorf("AllTime FuelCost = %.1f, want 115", all.FuelCost)
	}
}

func TestProjectedYear_FallbackScalesYearToDate(t *testing.T) {
	// No completed year; readings in January through March only: factor 4.
	v := &model.Vehicle{
		Odometer: []model.OdometerReading{
			reading(1000, at(t, "2025-01-05 09:00")),
			reading(1400, at(t, "2025-02-05 09:00")),
			reading(1900, at(t, "2025-03-05 09:00")),
		},
		Refuels: []model.RefuelEvent{
			refuel(30, 45, at(t, "2025-01-06 09:00"), false, nil),
			refuel(30, 45, at(t, "2025-02-06 09:00"), false, nil),
		},
	}

	now := at(t, "2025-03-20 09:00")
	rows := Report(v, now)
	proj := findPeriod(t, rows, model.PeriodProjectedYear)
	ytd := findPeriod(t, rows, model.PeriodYearToDate)

	if proj.Distance != ytd.Distance*4 {
		t.Errorf("projected Distance = %d, want %d", proj.Distance, ytd.Distance*4)
	}
	if math.Abs(proj.FuelUsed-ytd.FuelUsed*4) > 1e-9 {
		t.Errorf("projected FuelUsed = %.2f, want %.2f", proj.FuelUsed, ytd.FuelUsed*4)
	}
	if math.Abs(proj.FuelCost-ytd.FuelCost*4) > 1e-9 {
		t.Errorf("projected FuelCost = %.2f, want %.2f", proj.FuelCost, ytd.FuelCost*4)
	}
}

func TestProjectedYear_NoDataAtAll(t *testing.T) {
	rows := Report(&model.Vehicle{}, at(t, "2025-03-20 09:00"))
	proj := findPeriod(t, rows, model.PeriodProjectedYear)
	if proj.Distance != 0 || proj.FuelUsed != 0 || proj.FuelCost != 0 {
		t.Errorf("projection from empty history = %+v, want all zero", proj)
	}
}

func TestProjectedYear_AveragesCompletedYears(t *testing.T) {
	// Two completed years, each with a January refuel; the projection's
	// January share is the average of the two, and months without data in
	// either year contribute nothing.
	v := &model.Vehicle{
		Odometer: []model.OdometerReading{
			reading(1000, at(t, "2023-01-03 09:00")),
			reading(1500, at(t, "2023-01-28 09:00")),
			reading(8000, at(t, "2024-01-03 09:00")),
			reading(8300, at(t, "2024-01-28 09:00")),
		},
		Refuels: []model.RefuelEvent{
			refuel(40, 60, at(t, "2023-01-10 09:00"), false, nil),
			refuel(20, 30, at(t, "2024-01-10 09:00"), false, nil),
		},
	}

	rows := Report(v, at(t, "2025-03-20 09:00"))
	proj := findPeriod(t, rows, model.PeriodProjectedYear)

	if proj.Distance != 400 { // (500 + 300) / 2
		t.Errorf("projected Distance = %d, want 400", proj.Distance)
	}
	if proj.FuelUsed != 30 { // (40 + 20) / 2
		t.Errorf("projected FuelUsed = %.1f, want 30", proj.FuelUsed)
	}
	if proj.FuelCost != 45 {
		t.Errorf("projected FuelCost = %.1f, want 45", proj.FuelCost)
	}
}

func TestProjectedYear_SkipsZeroDataMonths(t *testing.T) {
	// 2023 has data for February only, 2024 for February and July. July's
	// average divides by one sample, not two: a year without July data must
	// not drag July down with a zero.
	v := &model.Vehicle{
		Odometer: []model.OdometerReading{
			reading(100, at(t, "2023-02-01 09:00")),
			reading(300, at(t, "2023-02-25 09:00")),
			reading(5000, at(t, "2024-02-01 09:00")),
			reading(5400, at(t, "2024-02-25 09:00")),
			reading(6000, at(t, "2024-07-01 09:00")),
			reading(6600, at(t, "2024-07-25 09:00")),
		},
	}

	rows := Report(v, at(t, "2025-03-20 09:00"))
	proj := findPeriod(t, rows, model.PeriodProjectedYear)

	// February: (200 + 400) / 2 = 300. July: 600 / 1 = 600.
	if proj.Distance != 900 {
		t.Errorf("projected Distance = %d, want 900", proj.Distance)
	}
}

func TestMonthlyReport_TwelveRowsWithGaps(t *testing.T) {
	v := &model.Vehicle{
		Refuels: []model.RefuelEvent{
			refuel(40, 60, at(t, "2025-05-10 09:00"), false, nil),
		},
	}

	rows := MonthlyReport(v, 2025)
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}
	if rows[0].Month != time.January || rows[11].Month != time.December {
		t.Errorf("rows not January..December: %v..%v", rows[0].Month, rows[11].Month)
	}
	if rows[4].FuelUsed != 40 {
		t.Errorf("May FuelUsed = %.1f, want 40", rows[4].FuelUsed)
	}
	if rows[3].FuelUsed != 0 {
		t.Errorf("April FuelUsed = %.1f, want 0", rows[3].FuelUsed)
	}
}
