// Package model defines domain types for tanklog vehicles and their records.
package model

import "time"

// MaintenanceType enumerates the maintenance event categories.
type MaintenanceType string

const (
	MaintenanceTires  MaintenanceType = "tires"
	MaintenanceBelt   MaintenanceType = "belt"
	MaintenanceOil    MaintenanceType = "oil"
	MaintenanceBrakes MaintenanceType = "brakes"
	MaintenanceOther  MaintenanceType = "other"
)

// MaintenanceTypes lists all valid categories.
var MaintenanceTypes = []MaintenanceType{
	MaintenanceTires, MaintenanceBelt, MaintenanceOil, MaintenanceBrakes, MaintenanceOther,
}

// ValidMaintenanceType reports whether s names a known category.
func ValidMaintenanceType(s string) bool {
	for _, t := range MaintenanceTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// OdometerReading is a timestamped odometer value. Readings are never mutated
// once recorded; they disappear only when the owning vehicle is deleted.
type OdometerReading struct {
	ID         int64
	Value      int64 // non-negative distance units
	RecordedAt time.Time
}

// RefuelEvent is a single fill-up. Odometer is an optional non-owning link to
// the reading taken at the pump; it may be nil if the user skipped mileage.
type RefuelEvent struct {
	ID         int64
	Volume     float64 // fuel units, always > 0
	Cost       float64
	RecordedAt time.Time
	Odometer   *OdometerReading

	// Partial marks a not-to-full fill. PartialManual is set once the user
	// overrides the inferred value; inference must never overwrite it after that.
	Partial       bool
	PartialManual bool
}

// MaintenanceEvent is a service record (tires, oil change, ...).
type MaintenanceEvent struct {
	ID           int64
	Type         MaintenanceType
	Cost         float64
	FreeOfCharge bool
	RecordedAt   time.Time
	Notes        string
	Odometer     *OdometerReading
}

// Vehicle is the aggregate root: a materialized snapshot of one vehicle and
// its full history. Collections are unordered; consumers sort as needed.
type Vehicle struct {
	ID        int64
	Name      string
	Make      string
	Model     string
	CreatedAt time.Time

	Odometer    []OdometerReading
	Refuels     []RefuelEvent
	Maintenance []MaintenanceEvent
}

// RefuelVolumes returns the volumes of all recorded refuels, in no particular
// order. Used as classifier history.
func (v *Vehicle) RefuelVolumes() []float64 {
	vols := make([]float64, 0, len(v.Refuels))
	for _, r := range v.Refuels {
		vols = append(vols, r.Volume)
	}
	return vols
}
