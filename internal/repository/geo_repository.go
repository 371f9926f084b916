package repository

import (
	"context"

	"jobscout/internal/database"

	"github.com/google/uuid"
)

// CityRow is the flattened city record the job importer resolves locations
// against: city name plus its state code, with population for tie-breaking.
type CityRow struct {
	ID         uuid.UUID
	Name       string
	StateCode  string
	Population int
}

type GeoRepository interface {
	HasAnyGeography(ctx context.Context) (bool, error)
	DeleteAllGeography(ctx context.Context) error
	CreateState(ctx context.Context, name, code string) (uuid.UUID, error)
	// CreateCounty reports whether the county was newly created; an existing
	// (state, fips) pair returns the existing id.
	CreateCounty(ctx context.Context, name string, stateID uuid.UUID, fips string) (uuid.UUID, bool, error)
	CreateCity(ctx context.Context, name string, countyID uuid.UUID, population int) error
	AllCities(ctx context.Context) ([]CityRow, error)
}

type PostgresGeoRepository struct {
	db database.DB
}

func NewPostgresGeoRepository(db database.DB) *PostgresGeoRepository {
	return &PostgresGeoRepository{db: db}
}

func (r *PostgresGeoRepository) HasAnyGeography(ctx context.Context) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM states)
		    OR EXISTS(SELECT 1 FROM counties)
		    OR EXISTS(SELECT 1 FROM cities)`)
	var any bool
	if err := row.Scan(&any); err != nil {
		return false, err
	}
	return any, nil
}

func (r *PostgresGeoRepository) DeleteAllGeography(ctx context.Context) error {
	for _, q := range []string{
		`DELETE FROM cities`,
		`DELETE FROM counties`,
		`DELETE FROM states`,
	} {
		if _, err := r.db.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresGeoRepository) CreateState(ctx context.Context, name, code string) (uuid.UUID, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO states (id, name, code) VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		uuid.New(), name, code)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresGeoRepository) CreateCounty(ctx context.Context, name string, stateID uuid.UUID, fips string) (uuid.UUID, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id FROM counties WHERE state_id = $1 AND fips = $2`, stateID, fips)
	var existing uuid.UUID
	if err := row.Scan(&existing); err == nil {
		return existing, false, nil
	}

	id := uuid.New()
	if _, err := r.db.Exec(ctx,
		`INSERT INTO counties (id, name, state_id, fips) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		id, name, stateID, fips,
	); err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

func (r *PostgresGeoRepository) CreateCity(ctx context.Context, name string, countyID uuid.UUID, population int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cities (id, name, county_id, population) VALUES ($1, $2, $3, $4)`,
		uuid.New(), name, countyID, population,
	)
	return err
}

func (r *PostgresGeoRepository) AllCities(ctx context.Context) ([]CityRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, s.code, c.population
		FROM cities c
		JOIN counties co ON co.id = c.county_id
		JOIN states s ON s.id = co.state_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CityRow, 0)
	for rows.Next() {
		var c CityRow
		if err := rows.Scan(&c.ID, &c.Name, &c.StateCode, &c.Population); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
