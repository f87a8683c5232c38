package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recordWith(checkIn, checkOut *time.Time) *Attendance {
	return &Attendance{
		ID:       "rec-1",
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func TestStateOf(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		rec  *Attendance
		want State
	}{
		{"no record", nil, StateNoRecord},
		{"absent locked", recordWith(nil, nil), StateAbsentLocked},
		{"checked in", recordWith(&now, nil), StateCheckedIn},
		{"complete", recordWith(&now, &now), StateComplete},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, StateOf(c.rec))
		})
	}
}

func TestDecideCheckIn(t *testing.T) {
	markable := Classification{Status: StatusPresent, CanMark: true}
	tooLate := Classification{Status: StatusAbsent, CanMark: false}

	cases := []struct {
		name     string
		state    State
		cls      Classification
		autoMark bool
		want     CheckInDecision
		wantErr  error
	}{
		{"fresh day markable", StateNoRecord, markable, true, CheckInDecision{CreateRecord: true}, nil},
		{"too late with auto-mark locks the day", StateNoRecord, tooLate, true, CheckInDecision{CreateAbsentRecord: true}, ErrCheckInTimePassed},
		{"too late without auto-mark only rejects", StateNoRecord, tooLate, false, CheckInDecision{}, ErrCheckInTimePassed},
		{"day already locked", StateAbsentLocked, markable, true, CheckInDecision{}, ErrAlreadyMarkedAbsent},
		{"already checked in", StateCheckedIn, markable, true, CheckInDecision{}, ErrAlreadyCheckedIn},
		{"already complete", StateComplete, markable, true, CheckInDecision{}, ErrAlreadyCheckedIn},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DecideCheckIn(c.state, c.cls, c.autoMark)
			assert.Equal(t, c.want, got)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecideCheckOut(t *testing.T) {
	cases := []struct {
		name    string
		state   State
		wantErr error
	}{
		{"no record yet", StateNoRecord, ErrMustCheckInFirst},
		{"locked by absence", StateAbsentLocked, ErrMustCheckInFirst},
		{"open check-in", StateCheckedIn, nil},
		{"already checked out", StateComplete, ErrAlreadyCheckedOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := DecideCheckOut(c.state)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
