package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Settings is one versioned attendance-rule snapshot. Snapshots are
// append-only; at most one is active at a time and activating a new one
// deactivates all others.
type Settings struct {
	ID                    string
	CheckInLatestBy       string // "HH:mm", 24-hour
	PermitDurationMinutes int
	AutoMarkAbsentEnabled bool
	CheckOutLatestBy      *string // "HH:mm", optional, informational
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Default is the hardcoded fallback applied when no snapshot is active.
func Default() Settings {
	return Settings{
		CheckInLatestBy:       "09:00",
		PermitDurationMinutes: 30,
		AutoMarkAbsentEnabled: true,
		IsActive:              true,
	}
}

// ParseTimeOfDay converts an "HH:mm" string to minutes since midnight.
func ParseTimeOfDay(timeStr string) (int, error) {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: want HH:mm", timeStr)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time of day %q: bad hour", timeStr)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time of day %q: bad minute", timeStr)
	}
	return hours*60 + minutes, nil
}
