package stats

import (
	"sort"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"
)

// Report computes the five fixed reporting periods for a vehicle as of now.
// Rows come back in display order: current month, last month, year to date,
// all time, projected year.
func Report(v *model.Vehicle, now time.Time) []model.PeriodStats {
	curStart, curEnd := MonthRange(now.Year(), now.Month())
	cur := Aggregate(v, curStart, curEnd)

	// Previous month rolls across the year boundary in January.
	lastStart, lastEnd := MonthRange(now.Year(), now.Month()-1)
	last := Aggregate(v, lastStart, lastEnd)

	ytd := AggregateYearToDate(v, now)

	return []model.PeriodStats{
		periodRow(model.PeriodCurrentMonth, cur),
		periodRow(model.PeriodLastMonth, last),
		periodRow(model.PeriodYearToDate, ytd),
		allTime(v),
		projectedYear(v, now, ytd),
	}
}

func periodRow(p model.Period, t Totals) model.PeriodStats {
	return model.PeriodStats{Period: p, Distance: t.Distance, FuelUsed: t.FuelUsed, FuelCost: t.FuelCost}
}

// allTime computes vehicle-wide totals: distance is last reading minus first
// (sorted by time), fuel figures are summed over every refuel.
func allTime(v *model.Vehicle) model.PeriodStats {
	ps := model.PeriodStats{Period: model.PeriodAllTime}
	if v == nil {
		return ps
	}

	for _, r := range v.Refuels {
		ps.FuelUsed += r.Volume
		ps.FuelCost += r.Cost
	}

	if len(v.Odometer) >= 2 {
		readings := make([]model.OdometerReading, len(v.Odometer))
		copy(readings, v.Odometer)
		sort.Slice(readings, func(i, j int) bool {
			return readings[i].RecordedAt.Before(readings[j].RecordedAt)
		})
		ps.Distance = readings[len(readings)-1].Value - readings[0].Value
	}
	return ps
}

// projectedYear extrapolates a full-year figure for the current, incomplete
// year. With at least one completed year of history, each calendar month's
// projection is the average of that month across the completed years that
// actually have data for it; months a year has no data for contribute
// nothing to the average rather than dragging it down with zeros (a vehicle
// owned for part of a year must not have its owned months diluted). Without
// any completed year, year-to-date totals are scaled by 12 over the number of
// distinct current-year months that have readings.
func projectedYear(v *model.Vehicle, now time.Time, ytd Totals) model.PeriodStats {
	ps := model.PeriodStats{Period: model.PeriodProjectedYear}
	if v == nil {
		return ps
	}

	years := completedYears(v, now.Year())
	if len(years) == 0 {
		months := monthsWithReadings(v, now.Year())
		if months == 0 {
			return ps
		}
		factor := 12 / float64(months)
		ps.Distance = int64(float64(ytd.Distance) * factor)
		ps.FuelUsed = ytd.FuelUsed * factor
		ps.FuelCost = ytd.FuelCost * factor
		return ps
	}

	for month := time.January; month <= time.December; month++ {
		var samples []Totals
		for _, year := range years {
			since, until := MonthRange(year, month)
			t := Aggregate(v, since, until)
			if t.Distance != 0 || t.FuelUsed != 0 || t.FuelCost != 0 {
				samples = append(samples, t)
			}
		}
		if len(samples) == 0 {
			continue
		}

		var dist, used, cost float64
		for _, s := range samples {
			dist += float64(s.Distance)
			used += s.FuelUsed
			cost += s.FuelCost
		}
		n := float64(len(samples))
		ps.Distance += int64(dist / n)
		ps.FuelUsed += used / n
		ps.FuelCost += cost / n
	}
	return ps
}

// completedYears returns the years strictly before currentYear that have at
// least one odometer reading, ascending.
func completedYears(v *model.Vehicle, currentYear int) []int {
	seen := make(map[int]struct{})
	for _, r := range v.Odometer {
		if y := r.RecordedAt.Year(); y < currentYear {
			seen[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// monthsWithReadings counts the distinct months of the given year that have
// at least one odometer reading.
func monthsWithReadings(v *model.Vehicle, year int) int {
	seen := make(map[time.Month]struct{})
	for _, r := range v.Odometer {
		if r.RecordedAt.Year() == year {
			seen[r.RecordedAt.Month()] = struct{}{}
		}
	}
	return len(seen)
}

// MonthlyReport computes the per-month totals for every month of a year,
// January first. Months without data come back as zero rows so tables and
// charts show the gaps.
func MonthlyReport(v *model.Vehicle, year int) []model.MonthlyStats {
	out := make([]model.MonthlyStats, 0, 12)
	for month := time.January; month <= time.December; month++ {
		since, until := MonthRange(year, month)
		t := Aggregate(v, since, until)
		out = append(out, model.MonthlyStats{
			Month:    month,
			Year:     year,
			Distance: t.Distance,
			FuelUsed: t.FuelUsed,
			FuelCost: t.FuelCost,
		})
	}
	return out
}
