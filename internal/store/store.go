// Package store provides the SQLite-backed record store for vehicles and
// their history. It materializes full vehicle snapshots for the stats engine,
// which never touches the database itself.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/tanklog/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the tanklog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the platform-appropriate data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tanklog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tanklog")
}

// DefaultPath returns the full path to the default database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "tanklog.db")
}

// CreateVehicle inserts a new vehicle and returns its ID.
func (s *Store) CreateVehicle(name, vmake, vmodel string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO vehicles (name, make, model, created_at) VALUES (?, ?, ?, ?)",
		name, vmake, vmodel, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("creating vehicle: %w", err)
	}
	return res.LastInsertId()
}

// Vehicles returns all vehicles without their history, ordered by name.
func (s *Store) Vehicles() ([]model.Vehicle, error) {
	rows, err := s.db.Query("SELECT id, name, make, model, created_at FROM vehicles ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// VehicleByName finds a vehicle header by its unique name.
func (s *Store) VehicleByName(name string) (model.Vehicle, error) {
	row := s.db.QueryRow("SELECT id, name, make, model, created_at FROM vehicles WHERE name = ?", name)
	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return v, fmt.Errorf("no vehicle named %q", name)
	}
	return v, err
}

// DeleteVehicle removes a vehicle; readings, refuels, and maintenance cascade.
func (s *Store) DeleteVehicle(id int64) error {
	_, err := s.db.Exec("DELETE FROM vehicles WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(r rowScanner) (model.Vehicle, error) {
	var v model.Vehicle
	var vmake, vmodel sql.NullString
	var created string
	if err := r.Scan(&v.ID, &v.Name, &vmake, &vmodel, &created); err != nil {
		return v, err
	}
	v.Make = vmake.String
	v.Model = vmodel.String
	v.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return v, nil
}

// AddOdometerReading records a reading and returns its ID.
func (s *Store) AddOdometerReading(vehicleID, value int64, recordedAt time.Time) (int64, error) {
	if value < 0 {
		return 0, fmt.Errorf("odometer value must be non-negative, got %d", value)
	}
	res, err := s.db.Exec(
		"INSERT INTO odometer_readings (vehicle_id, value, recorded_at) VALUES (?, ?, ?)",
		vehicleID, value, recordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording odometer reading: %w", err)
	}
	return res.LastInsertId()
}

// AddRefuel records a refuel. odometerID may be nil when the user skipped
// mileage. Events arrive with the partial flag already decided (inferred by
// the classifier or set by the user).
func (s *Store) AddRefuel(vehicleID int64, r model.RefuelEvent, odometerID *int64) (int64, error) {
	if r.Volume <= 0 {
		return 0, fmt.Errorf("refuel volume must be positive, got %.2f", r.Volume)
	}
	res, err := s.db.Exec(
		`INSERT INTO refuels (vehicle_id, volume, cost, recorded_at, odometer_id, partial, partial_manual)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		vehicleID, r.Volume, r.Cost, r.RecordedAt.UTC().Format(time.RFC3339),
		odometerID, boolInt(r.Partial), boolInt(r.PartialManual),
	)
	if err != nil {
		return 0, fmt.Errorf("recording refuel: %w", err)
	}
	return res.LastInsertId()
}

// UpdateRefuelPartial overwrites a refuel's partial-fill classification.
func (s *Store) UpdateRefuelPartial(refuelID int64, partial, manual bool) error {
	_, err := s.db.Exec(
		"UPDATE refuels SET partial = ?, partial_manual = ? WHERE id = ?",
		boolInt(partial), boolInt(manual), refuelID,
	)
	return err
}

// AddMaintenance records a maintenance event. odometerID may be nil.
func (s *Store) AddMaintenance(vehicleID int64, m model.MaintenanceEvent, odometerID *int64) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO maintenance (vehicle_id, type, cost, free, notes, recorded_at, odometer_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		vehicleID, string(m.Type), m.Cost, boolInt(m.FreeOfCharge), m.Notes,
		m.RecordedAt.UTC().Format(time.RFC3339), odometerID,
	)
	if err != nil {
		return 0, fmt.Errorf("recording maintenance: %w", err)
	}
	return res.LastInsertId()
}

// RefuelVolumes returns all refuel volumes for a vehicle, oldest first. Used
// as classifier history when recording a new refuel.
func (s *Store) RefuelVolumes(vehicleID int64) ([]float64, error) {
	rows, err := s.db.Query(
		"SELECT volume FROM refuels WHERE vehicle_id = ? ORDER BY recorded_at", vehicleID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// LoadVehicle materializes a full vehicle snapshot: header plus all odometer
// readings, refuels (with their linked readings resolved), and maintenance.
func (s *Store) LoadVehicle(id int64) (*model.Vehicle, error) {
	row := s.db.QueryRow("SELECT id, name, make, model, created_at FROM vehicles WHERE id = ?", id)
	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no vehicle with id %d", id)
	}
	if err != nil {
		return nil, err
	}

	readings, byID, err := s.loadReadings(id)
	if err != nil {
		return nil, fmt.Errorf("loading odometer readings: %w", err)
	}
	v.Odometer = readings

	if v.Refuels, err = s.loadRefuels(id, byID); err != nil {
		return nil, fmt.Errorf("loading refuels: %w", err)
	}
	if v.Maintenance, err = s.loadMaintenance(id, byID); err != nil {
		return nil, fmt.Errorf("loading maintenance: %w", err)
	}
	return &v, nil
}

func (s *Store) loadReadings(vehicleID int64) ([]model.OdometerReading, map[int64]*model.OdometerReading, error) {
	rows, err := s.db.Query(
		"SELECT id, value, recorded_at FROM odometer_readings WHERE vehicle_id = ? ORDER BY recorded_at",
		vehicleID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rows.Close() }()

	var readings []model.OdometerReading
	for rows.Next() {
		var r model.OdometerReading
		var recorded string
		if err := rows.Scan(&r.ID, &r.Value, &recorded); err != nil {
			return nil, nil, err
		}
		r.RecordedAt = parseLocal(recorded)
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	byID := make(map[int64]*model.OdometerReading, len(readings))
	for i := range readings {
		byID[readings[i].ID] = &readings[i]
	}
	return readings, byID, nil
}

func (s *Store) loadRefuels(vehicleID int64, readings map[int64]*model.OdometerReading) ([]model.RefuelEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, volume, cost, recorded_at, odometer_id, partial, partial_manual
		 FROM refuels WHERE vehicle_id = ? ORDER BY recorded_at`,
		vehicleID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var refuels []model.RefuelEvent
	for rows.Next() {
		var r model.RefuelEvent
		var recorded string
		var odometerID sql.NullInt64
		var partial, manual int
		if err := rows.Scan(&r.ID, &r.Volume, &r.Cost, &recorded, &odometerID, &partial, &manual); err != nil {
			return nil, err
		}
		r.RecordedAt = parseLocal(recorded)
		r.Partial = partial != 0
		r.PartialManual = manual != 0
		if odometerID.Valid {
			r.Odometer = readings[odometerID.Int64]
		}
		refuels = append(refuels, r)
	}
	return refuels, rows.Err()
}

func (s *Store) loadMaintenance(vehicleID int64, readings map[int64]*model.OdometerReading) ([]model.MaintenanceEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, type, cost, free, notes, recorded_at, odometer_id
		 FROM maintenance WHERE vehicle_id = ? ORDER BY recorded_at`,
		vehicleID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []model.MaintenanceEvent
	for rows.Next() {
		var m model.MaintenanceEvent
		var mtype, recorded string
		var notes sql.NullString
		var free int
		var odometerID sql.NullInt64
		if err := rows.Scan(&m.ID, &mtype, &m.Cost, &free, &notes, &recorded, &odometerID); err != nil {
			return nil, err
		}
		m.Type = model.MaintenanceType(mtype)
		m.FreeOfCharge = free != 0
		m.Notes = notes.String
		m.RecordedAt = parseLocal(recorded)
		if odometerID.Valid {
			m.Odometer = readings[odometerID.Int64]
		}
		events = append(events, m)
	}
	return events, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseLocal parses a stored RFC3339 timestamp into local time, zero on error.
func parseLocal(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	if t.IsZero() {
		return t
	}
	return t.Local()
}
