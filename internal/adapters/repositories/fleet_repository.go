package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
)

// SQL-backed implementation of the FleetRepository port. Rows come back in
// id order so the arena numbering is stable between reads.
type SQLFleetRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSqliteFleetRepository(db *sql.DB) *SQLFleetRepository {
	return &SQLFleetRepository{DB: db, Dialect: DialectSQLite}
}

func NewPostgresFleetRepository(db *sql.DB) *SQLFleetRepository {
	return &SQLFleetRepository{DB: db, Dialect: DialectPostgres}
}

// Return the start coordinates of every stored driver.
func (s *SQLFleetRepository) ListDrivers(ctx context.Context) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "fleet.repo.ListDrivers")(&err)

	if s.DB == nil {
		return nil, errors.New("fleet repository: DB is nil")
	}

	query := `
	SELECT
		x,
		y
	FROM drivers
	ORDER BY driver_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.Coordinates, 0, 16)
	for rows.Next() {
		var c domain.Coordinates
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

// Return every stored location with its index-aligned profit.
func (s *SQLFleetRepository) ListLocations(ctx context.Context) (_ []domain.Coordinates, _ []int, err error) {
	defer obs.Time(ctx, "fleet.repo.ListLocations")(&err)

	if s.DB == nil {
		return nil, nil, errors.New("fleet repository: DB is nil")
	}

	query := `
	SELECT
		x,
		y,
		profit
	FROM locations
	ORDER BY location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Coordinates, 0, 64)
	profits := make([]int, 0, 64)
	for rows.Next() {
		var c domain.Coordinates
		var profit int
		if err := rows.Scan(&c.X, &c.Y, &profit); err != nil {
			return nil, nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, c)
		profits = append(profits, profit)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, profits, nil
}

// ReadRequest lets the stored fleet act as an InputProvider.
func (s *SQLFleetRepository) ReadRequest(ctx context.Context) (*domain.PlanRequest, error) {
	drivers, err := s.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	locations, profits, err := s.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.PlanRequest{Drivers: drivers, Locations: locations, Profits: profits}, nil
}
