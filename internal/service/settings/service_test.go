package settings

import (
	"context"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	snapshots []settings.Settings
}

func (f *fakeSettingsRepo) GetAll(ctx context.Context) ([]settings.Settings, error) {
	return f.snapshots, nil
}

func (f *fakeSettingsRepo) ActivateSnapshot(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	for i := range f.snapshots {
		f.snapshots[i].IsActive = false
	}
	s.ID = "snap-new"
	s.IsActive = true
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.snapshots = append(f.snapshots, s)
	return s, nil
}

func TestGetActiveFallsBackToDefault(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	resp, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.CheckInLatestBy)
	assert.Equal(t, 30, resp.PermitDurationMinutes)
	assert.True(t, resp.AutoMarkAbsentEnabled)
}

func TestActivateDeactivatesPrevious(t *testing.T) {
	repo := &fakeSettingsRepo{snapshots: []settings.Settings{
		{ID: "snap-old", CheckInLatestBy: "08:00", IsActive: true, UpdatedAt: time.Now().Add(-time.Hour)},
	}}
	svc := NewSettingsService(repo)

	resp, err := svc.Activate(context.Background(), settings.UpsertSettingsRequest{
		CheckInLatestBy:       "09:30",
		PermitDurationMinutes: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.CheckInLatestBy)
	assert.True(t, resp.IsActive)
	// Omitted auto-mark flag defaults to enabled.
	assert.True(t, resp.AutoMarkAbsentEnabled)

	assert.False(t, repo.snapshots[0].IsActive)

	resolved, err := svc.ResolveActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snap-new", resolved.ID)
}

func TestActivateRejectsInvalidRequest(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	cases := []settings.UpsertSettingsRequest{
		{},
		{CheckInLatestBy: "25:00"},
		{CheckInLatestBy: "09:00", PermitDurationMinutes: -5},
		{CheckInLatestBy: "09:00", PermitDurationMinutes: 99999},
	}

	for _, req := range cases {
		_, err := svc.Activate(context.Background(), req)
		assert.Error(t, err, "request %+v", req)
	}
}

func TestResolveActiveSurvivesMultipleActive(t *testing.T) {
	now := time.Now()
	repo := &fakeSettingsRepo{snapshots: []settings.Settings{
		{ID: "a", CheckInLatestBy: "08:00", IsActive: true, UpdatedAt: now.Add(-time.Hour)},
		{ID: "b", CheckInLatestBy: "10:00", IsActive: true, UpdatedAt: now},
	}}
	svc := NewSettingsService(repo)

	resolved, err := svc.ResolveActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", resolved.ID)
}
