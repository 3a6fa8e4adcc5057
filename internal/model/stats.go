package model

import "time"

// Period identifies one of the fixed reporting periods.
type Period int

const (
	PeriodCurrentMonth Period = iota
	PeriodLastMonth
	PeriodYearToDate
	PeriodAllTime
	PeriodProjectedYear
)

// String returns the display label for the period.
func (p Period) String() string {
	switch p {
	case PeriodCurrentMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodYearToDate:
		return "Year to Date"
	case PeriodAllTime:
		return "All Time"
	case PeriodProjectedYear:
		return "Projected Year"
	default:
		return "Unknown"
	}
}

// PeriodStats holds the aggregate figures for one reporting period.
type PeriodStats struct {
	Period   Period
	Distance int64
	FuelUsed float64
	FuelCost float64
}

// EconomyPreview is one row of the recent-refuels economy list.
// Economy is distance units per fuel unit; 0 when it cannot be computed.
type EconomyPreview struct {
	RecordedAt time.Time
	Volume     float64
	Cost       float64
	Economy    float64
}

// MonthlyStats holds the aggregate figures for one calendar month.
type MonthlyStats struct {
	Month    time.Month
	Year     int
	Distance int64
	FuelUsed float64
	FuelCost float64
}
