package settings

import "context"

// SettingsService defines business logic for attendance settings.
type SettingsService interface {
	// GetActive resolves the currently applicable snapshot (or the default).
	GetActive(ctx context.Context) (SettingsResponse, error)

	// Activate validates and activates a new snapshot, deactivating others.
	Activate(ctx context.Context, req UpsertSettingsRequest) (SettingsResponse, error)

	// ResolveActive returns the applicable snapshot as an entity, for use by
	// the attendance engine.
	ResolveActive(ctx context.Context) (Settings, error)
}
