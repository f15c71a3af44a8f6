package booking

import (
	"errors"
	"time"

	"pontomais/internal/domain/plan"
	"pontomais/internal/pkg/clock"
)

var (
	ErrOptionNotOffered = errors.New("rental option not offered for this point")
	ErrEmptyBuyer       = errors.New("buyer email is required")
	ErrSnapshotFailed   = errors.New("failed to snapshot point")
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Blocks reports whether a booking in this status still occupies its days.
func (s Status) Blocks() bool {
	return s == StatusUpcoming || s == StatusActive
}

// StatusAt compares civil days only; start and end are inclusive.
func StatusAt(start, end, now time.Time) Status {
	today := clock.DateOf(now)
	switch {
	case today.Before(clock.DateOf(start)):
		return StatusUpcoming
	case today.After(clock.DateOf(end)):
		return StatusCompleted
	default:
		return StatusActive
	}
}

// EndDateFor adds the plan duration in calendar days.
func EndDateFor(start time.Time, p plan.Period) time.Time {
	return clock.DateOf(start).AddDate(0, 0, plan.DurationDays(p))
}
