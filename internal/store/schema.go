package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS vehicles (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT NOT NULL UNIQUE,
    make         TEXT,
    model        TEXT,
    created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS odometer_readings (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    vehicle_id   INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
    value        INTEGER NOT NULL CHECK (value >= 0),
    recorded_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS refuels (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    vehicle_id      INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
    volume          REAL NOT NULL CHECK (volume > 0),
    cost            REAL NOT NULL DEFAULT 0,
    recorded_at     TEXT NOT NULL,
    odometer_id     INTEGER REFERENCES odometer_readings(id) ON DELETE SET NULL,
    partial         INTEGER NOT NULL DEFAULT 0,
    partial_manual  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS maintenance (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    vehicle_id   INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
    type         TEXT NOT NULL,
    cost         REAL NOT NULL DEFAULT 0,
    free         INTEGER NOT NULL DEFAULT 0,
    notes        TEXT,
    recorded_at  TEXT NOT NULL,
    odometer_id  INTEGER REFERENCES odometer_readings(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_odometer_vehicle_time ON odometer_readings(vehicle_id, recorded_at);
CREATE INDEX IF NOT EXISTS idx_refuels_vehicle_time ON refuels(vehicle_id, recorded_at);
CREATE INDEX IF NOT EXISTS idx_maintenance_vehicle_time ON maintenance(vehicle_id, recorded_at);
`
