package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/location"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type geoFenceRepository struct {
	db *database.DB
}

const geoFenceColumns = `id, name, latitude, longitude, radius_meters, address, is_active, created_at, updated_at`

func scanGeoFence(row pgx.Row, fence *location.GeoFence) error {
	return row.Scan(
		&fence.ID, &fence.Name, &fence.Latitude, &fence.Longitude,
		&fence.RadiusMeters, &fence.Address, &fence.IsActive,
		&fence.CreatedAt, &fence.UpdatedAt,
	)
}

// GetActive implements location.GeoFenceRepository.
func (g *geoFenceRepository) GetActive(ctx context.Context) ([]location.GeoFence, error) {
	return g.list(ctx, `WHERE is_active = TRUE`)
}

// List implements location.GeoFenceRepository.
func (g *geoFenceRepository) List(ctx context.Context) ([]location.GeoFence, error) {
	return g.list(ctx, "")
}

func (g *geoFenceRepository) list(ctx context.Context, where string) ([]location.GeoFence, error) {
	q := GetQuerier(ctx, g.db)

	query := `SELECT ` + geoFenceColumns + ` FROM geofences ` + where + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query geofences: %w", err)
	}
	defer rows.Close()

	var fences []location.GeoFence
	for rows.Next() {
		var fence location.GeoFence
		if err := scanGeoFence(rows, &fence); err != nil {
			return nil, fmt.Errorf("failed to scan geofence: %w", err)
		}
		fences = append(fences, fence)
	}

	return fences, nil
}

// GetByID implements location.GeoFenceRepository.
func (g *geoFenceRepository) GetByID(ctx context.Context, id string) (location.GeoFence, error) {
	q := GetQuerier(ctx, g.db)

	query := `SELECT ` + geoFenceColumns + ` FROM geofences WHERE id = $1`

	var fence location.GeoFence
	if err := scanGeoFence(q.QueryRow(ctx, query, id), &fence); err != nil {
		if err == pgx.ErrNoRows {
			return location.GeoFence{}, location.ErrGeoFenceNotFound
		}
		return location.GeoFence{}, fmt.Errorf("failed to get geofence by ID: %w", err)
	}

	return fence, nil
}

// Create implements location.GeoFenceRepository.
func (g *geoFenceRepository) Create(ctx context.Context, fence location.GeoFence) (location.GeoFence, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		INSERT INTO geofences (name, latitude, longitude, radius_meters, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		fence.Name,
		fence.Latitude,
		fence.Longitude,
		fence.RadiusMeters,
		fence.Address,
		fence.IsActive,
	).Scan(&fence.ID, &fence.CreatedAt, &fence.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.GeoFence{}, location.ErrGeoFenceNameExists
		}
		return location.GeoFence{}, fmt.Errorf("failed to create geofence: %w", err)
	}

	return fence, nil
}

// Update implements location.GeoFenceRepository.
func (g *geoFenceRepository) Update(ctx context.Context, fence location.GeoFence) (location.GeoFence, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE geofences
		SET name = $2, latitude = $3, longitude = $4, radius_meters = $5,
			address = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		fence.ID,
		fence.Name,
		fence.Latitude,
		fence.Longitude,
		fence.RadiusMeters,
		fence.Address,
		fence.IsActive,
	).Scan(&fence.CreatedAt, &fence.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return location.GeoFence{}, location.ErrGeoFenceNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.GeoFence{}, location.ErrGeoFenceNameExists
		}
		return location.GeoFence{}, fmt.Errorf("failed to update geofence: %w", err)
	}

	return fence, nil
}

func NewGeoFenceRepository(db *database.DB) location.GeoFenceRepository {
	return &geoFenceRepository{db: db}
}
