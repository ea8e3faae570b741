package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Dialect selects the placeholder syntax of the target database.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "sqlite", "":
		return DialectSQLite, nil
	case "postgres", "pgx":
		return DialectPostgres, nil
	}
	return 0, fmt.Errorf("unknown database driver %q", s)
}

// Return the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// InitSchema creates the fleet tables. The DDL is valid for SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id INTEGER PRIMARY KEY,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id INTEGER PRIMARY KEY,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		profit INTEGER NOT NULL DEFAULT 0
	);
	`

	statements := []string{
		createDriversQuery,
		createLocationsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DriverSeed struct {
	DriverID int     `json:"driver_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type LocationSeed struct {
	LocationID int     `json:"location_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Profit     int     `json:"profit"`
}

type FleetSeed struct {
	Drivers   []DriverSeed   `json:"drivers"`
	Locations []LocationSeed `json:"locations"`
}

func (s *FleetSeed) validate() error {
	for i, d := range s.Drivers {
		if d.DriverID <= 0 {
			return fmt.Errorf("invalid driver_id at index %d: %d", i+1, d.DriverID)
		}
		if !finite(d.X, d.Y) {
			return fmt.Errorf("driver_id=%d: coordinates must be finite", d.DriverID)
		}
	}
	for i, l := range s.Locations {
		if l.LocationID <= 0 {
			return fmt.Errorf("invalid location_id at index %d: %d", i+1, l.LocationID)
		}
		if !finite(l.X, l.Y) {
			return fmt.Errorf("location_id=%d: coordinates must be finite", l.LocationID)
		}
		if l.Profit < 0 {
			return fmt.Errorf("location_id=%d: profit cannot be negative", l.LocationID)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SeedFromJSON upserts drivers and locations from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var seed FleetSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	return Seed(ctx, db, dialect, &seed)
}

// Seed upserts the given fleet in one transaction.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, seed *FleetSeed) error {
	if db == nil {
		return errors.New("seed fleet: DB is nil")
	}
	if err := seed.validate(); err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p := dialect.placeholder
	driverQuery := fmt.Sprintf(`
	INSERT INTO drivers (driver_id, x, y)
	VALUES (%s, %s, %s)
	ON CONFLICT (driver_id) DO UPDATE
	SET x = EXCLUDED.x,
		y = EXCLUDED.y;
	`, p(1), p(2), p(3))

	locationQuery := fmt.Sprintf(`
	INSERT INTO locations (location_id, x, y, profit)
	VALUES (%s, %s, %s, %s)
	ON CONFLICT (location_id) DO UPDATE
	SET x = EXCLUDED.x,
		y = EXCLUDED.y,
		profit = EXCLUDED.profit;
	`, p(1), p(2), p(3), p(4))

	driverStmt, err := tx.PrepareContext(ctx, driverQuery)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare driver insert: %w", err)
	}
	defer driverStmt.Close()

	for _, d := range seed.Drivers {
		if _, err := driverStmt.ExecContext(ctx, d.DriverID, d.X, d.Y); err != nil {
			return fmt.Errorf("seed fleet: insert driver_id=%d: %w", d.DriverID, err)
		}
	}

	locationStmt, err := tx.PrepareContext(ctx, locationQuery)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare location insert: %w", err)
	}
	defer locationStmt.Close()

	for _, l := range seed.Locations {
		if _, err := locationStmt.ExecContext(ctx, l.LocationID, l.X, l.Y, l.Profit); err != nil {
			return fmt.Errorf("seed fleet: insert location_id=%d: %w", l.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
