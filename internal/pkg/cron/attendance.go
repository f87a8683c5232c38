package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	sweepInterval time.Duration
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, sweepInterval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		sweepInterval: sweepInterval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_mark_absent", j.sweepInterval, j.AutoMarkAbsent)
}

// AutoMarkAbsent locks out employees who never checked in once the check-in
// window has closed. The sweep is idempotent: employees with any record for
// the day are skipped, so re-runs and races with live check-ins are safe.
func (j *AttendanceJobs) AutoMarkAbsent(ctx context.Context) error {
	marked, err := j.attendanceSvc.SweepAutoAbsence(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent employees", "count", marked)
	}
	return nil
}
