package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func snap(id string, active bool, updatedAt time.Time) Settings {
	return Settings{
		ID:                    id,
		CheckInLatestBy:       "08:30",
		PermitDurationMinutes: 15,
		AutoMarkAbsentEnabled: true,
		IsActive:              active,
		UpdatedAt:             updatedAt,
	}
}

func TestResolveActiveNoSnapshots(t *testing.T) {
	resolved, activeCount := ResolveActive(nil)
	assert.Equal(t, 0, activeCount)
	assert.Equal(t, Default(), resolved)
}

func TestResolveActiveNoActiveSnapshot(t *testing.T) {
	snapshots := []Settings{
		snap("a", false, time.Now()),
		snap("b", false, time.Now().Add(-time.Hour)),
	}

	resolved, activeCount := ResolveActive(snapshots)
	assert.Equal(t, 0, activeCount)
	assert.Equal(t, "09:00", resolved.CheckInLatestBy)
	assert.Equal(t, 30, resolved.PermitDurationMinutes)
	assert.True(t, resolved.AutoMarkAbsentEnabled)
}

func TestResolveActiveSingle(t *testing.T) {
	snapshots := []Settings{
		snap("old", false, time.Now().Add(-2*time.Hour)),
		snap("current", true, time.Now()),
	}

	resolved, activeCount := ResolveActive(snapshots)
	assert.Equal(t, 1, activeCount)
	assert.Equal(t, "current", resolved.ID)
}

func TestResolveActivePicksNewestOfMany(t *testing.T) {
	now := time.Now()
	snapshots := []Settings{
		snap("stale", true, now.Add(-3*time.Hour)),
		snap("newest", true, now),
		snap("middle", true, now.Add(-time.Hour)),
	}

	resolved, activeCount := ResolveActive(snapshots)
	assert.Equal(t, 3, activeCount)
	assert.Equal(t, "newest", resolved.ID)
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.input)
			continue
		}
		assert.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, "09:00", d.CheckInLatestBy)
	assert.Equal(t, 30, d.PermitDurationMinutes)
	assert.True(t, d.AutoMarkAbsentEnabled)
	assert.True(t, d.IsActive)
}
