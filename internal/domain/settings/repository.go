package settings

import "context"

// SettingsRepository defines data access for attendance settings snapshots.
type SettingsRepository interface {
	// GetAll returns every stored snapshot, newest update first.
	GetAll(ctx context.Context) ([]Settings, error)

	// ActivateSnapshot deactivates all existing snapshots and inserts the
	// given one as the single active snapshot, atomically.
	ActivateSnapshot(ctx context.Context, s Settings) (Settings, error)
}
