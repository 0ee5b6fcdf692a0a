package database

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		phone TEXT NOT NULL,
		national_id TEXT NOT NULL UNIQUE,
		hire_date TEXT NOT NULL,
		photo TEXT,
		hourly_rate TEXT NOT NULL DEFAULT '50',
		job_title TEXT NOT NULL DEFAULT 'worker',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		date TEXT NOT NULL,
		check_in TEXT,
		lunch_out TEXT,
		lunch_in TEXT,
		check_out TEXT,
		total_hours REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (worker_id, date),
		FOREIGN KEY (worker_id) REFERENCES workers(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS advances (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		date TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (worker_id) REFERENCES workers(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS driver_trips (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		from_location TEXT NOT NULL,
		to_location TEXT NOT NULL,
		departure_time TEXT,
		arrival_time TEXT,
		date TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (worker_id) REFERENCES workers(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		hourly_rate TEXT NOT NULL DEFAULT '50',
		admin_password_hash TEXT NOT NULL,
		company_name TEXT NOT NULL DEFAULT '',
		company_logo TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_worker_date ON attendance(worker_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_advances_worker_date ON advances(worker_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_worker_date ON driver_trips(worker_id, date)`,
}

// InitSchema creates all tables on first run. Statements are idempotent so
// this is safe to call on every startup.
func (db *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
