package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func toResponse(s settings.Settings) settings.SettingsResponse {
	resp := settings.SettingsResponse{
		ID:                    s.ID,
		CheckInLatestBy:       s.CheckInLatestBy,
		PermitDurationMinutes: s.PermitDurationMinutes,
		AutoMarkAbsentEnabled: s.AutoMarkAbsentEnabled,
		CheckOutLatestBy:      s.CheckOutLatestBy,
		IsActive:              s.IsActive,
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// ResolveActive implements settings.SettingsService.
func (s *SettingsServiceImpl) ResolveActive(ctx context.Context) (settings.Settings, error) {
	snapshots, err := s.SettingsRepository.GetAll(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	resolved, activeCount := settings.ResolveActive(snapshots)
	if activeCount > 1 {
		// Should not happen: activation deactivates all others in one
		// transaction. Flag it and carry on with the newest.
		slog.Warn("Multiple active settings snapshots found",
			"error", settings.ErrMultipleActiveSnapshots,
			"count", activeCount,
			"resolved_id", resolved.ID)
	}

	return resolved, nil
}

// GetActive implements settings.SettingsService.
func (s *SettingsServiceImpl) GetActive(ctx context.Context) (settings.SettingsResponse, error) {
	resolved, err := s.ResolveActive(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return toResponse(resolved), nil
}

// Activate implements settings.SettingsService.
func (s *SettingsServiceImpl) Activate(ctx context.Context, req settings.UpsertSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	autoMark := true
	if req.AutoMarkAbsentEnabled != nil {
		autoMark = *req.AutoMarkAbsentEnabled
	}

	snap := settings.Settings{
		CheckInLatestBy:       req.CheckInLatestBy,
		PermitDurationMinutes: req.PermitDurationMinutes,
		AutoMarkAbsentEnabled: autoMark,
		CheckOutLatestBy:      req.CheckOutLatestBy,
	}

	activated, err := s.SettingsRepository.ActivateSnapshot(ctx, snap)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	return toResponse(activated), nil
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepo,
	}
}
