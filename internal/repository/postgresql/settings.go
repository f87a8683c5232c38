package postgresql

import (
	"context"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

// GetAll implements settings.SettingsRepository.
func (s *settingsRepository) GetAll(ctx context.Context) ([]settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, check_in_latest_by, permit_duration_minutes,
			   auto_mark_absent_enabled, check_out_latest_by, is_active,
			   created_at, updated_at
		FROM attendance_settings
		ORDER BY updated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var snapshots []settings.Settings
	for rows.Next() {
		var snap settings.Settings
		err := rows.Scan(
			&snap.ID, &snap.CheckInLatestBy, &snap.PermitDurationMinutes,
			&snap.AutoMarkAbsentEnabled, &snap.CheckOutLatestBy, &snap.IsActive,
			&snap.CreatedAt, &snap.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settings: %w", err)
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// ActivateSnapshot implements settings.SettingsRepository. The deactivate
// and insert run in one transaction so readers never observe two active
// snapshots from this path.
func (s *settingsRepository) ActivateSnapshot(ctx context.Context, snap settings.Settings) (settings.Settings, error) {
	err := WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE attendance_settings SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE`); err != nil {
			return fmt.Errorf("failed to deactivate settings: %w", err)
		}

		query := `
			INSERT INTO attendance_settings (
				check_in_latest_by, permit_duration_minutes,
				auto_mark_absent_enabled, check_out_latest_by, is_active
			) VALUES ($1, $2, $3, $4, TRUE)
			RETURNING id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query,
			snap.CheckInLatestBy,
			snap.PermitDurationMinutes,
			snap.AutoMarkAbsentEnabled,
			snap.CheckOutLatestBy,
		).Scan(&snap.ID, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert settings: %w", err)
		}

		return nil
	})
	if err != nil {
		return settings.Settings{}, err
	}

	snap.IsActive = true
	return snap, nil
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}
