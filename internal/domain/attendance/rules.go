package attendance

import (
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
)

// Classification is the outcome of the time-window check for a check-in
// instant. CanMark=false means the event must be rejected; the subject is
// definitionally absent for the day.
type Classification struct {
	Status        Status
	CanMark       bool
	LateByMinutes int
}

func minutesOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// Classify partitions a check-in instant against the active settings:
//
//	m <= L          -> PRESENT
//	L < m <= L+P    -> LATE (lateness counted from L)
//	m > L+P         -> ABSENT, not markable
//
// where m is minutes-since-midnight of the instant in the reference
// timezone, L the check-in deadline and P the permit duration. The
// boundaries are inclusive on the left window, so the partition is
// exhaustive and non-overlapping.
func Classify(checkInAt time.Time, s settings.Settings, loc *time.Location) (Classification, error) {
	latestBy, err := settings.ParseTimeOfDay(s.CheckInLatestBy)
	if err != nil {
		return Classification{}, fmt.Errorf("invalid check_in_latest_by in settings: %w", err)
	}

	m := minutesOfDay(checkInAt, loc)
	permitEnd := latestBy + s.PermitDurationMinutes

	if m <= latestBy {
		return Classification{Status: StatusPresent, CanMark: true}, nil
	}

	if m <= permitEnd {
		return Classification{
			Status:        StatusLate,
			CanMark:       true,
			LateByMinutes: m - latestBy,
		}, nil
	}

	return Classification{Status: StatusAbsent, CanMark: false}, nil
}

// ShouldAutoMarkAbsent decides whether the absence sweep may mark a subject
// absent at the given instant. With a permit window the cutoff is the end
// of that window; with zero permit the sweep fires right after the
// deadline. Subjects that already checked in are never eligible.
func ShouldAutoMarkAbsent(s settings.Settings, hasCheckedIn bool, now time.Time, loc *time.Location) (bool, error) {
	if !s.AutoMarkAbsentEnabled || hasCheckedIn {
		return false, nil
	}

	latestBy, err := settings.ParseTimeOfDay(s.CheckInLatestBy)
	if err != nil {
		return false, fmt.Errorf("invalid check_in_latest_by in settings: %w", err)
	}

	cutoff := latestBy
	if s.PermitDurationMinutes > 0 {
		cutoff = latestBy + s.PermitDurationMinutes
	}

	return minutesOfDay(now, loc) > cutoff, nil
}

// DayOf truncates an instant to midnight of its working day in the
// reference timezone. Record lookup and creation must both go through this
// so a single day never yields two records.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
