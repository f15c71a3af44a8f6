package availability

import (
	"errors"
	"time"

	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/internal/pkg/clock"
)

var (
	ErrPastDate        = errors.New("date cannot be in the past")
	ErrDateOccupied    = errors.New("this date is already taken")
	ErrRangeConflict   = errors.New("the selected plan's period conflicts with an existing reservation")
	ErrInvalidDate     = errors.New("invalid date")
	ErrSlotUnavailable = errors.New("slot no longer available")
)

type Code string

const (
	CodePastDate        Code = "PAST_DATE"
	CodeDateOccupied    Code = "DATE_OCCUPIED"
	CodeRangeConflict   Code = "RANGE_CONFLICT"
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeSlotUnavailable Code = "SLOT_UNAVAILABLE"
)

// CodeOf returns "" for errors outside this package.
func CodeOf(err error) Code {
	switch {
	case errors.Is(err, ErrPastDate):
		return CodePastDate
	case errors.Is(err, ErrDateOccupied):
		return CodeDateOccupied
	case errors.Is(err, ErrRangeConflict):
		return CodeRangeConflict
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrSlotUnavailable):
		return CodeSlotUnavailable
	default:
		return ""
	}
}

// IsRangeFree walks DurationDays days from start and stops at the first booked one.
func IsRangeFree(start time.Time, period plan.Period, ix occupancy.Index) bool {
	d := clock.DateOf(start)
	for i := 0; i < plan.DurationDays(period); i++ {
		if ix.Contains(d) {
			return false
		}
		d = d.AddDate(0, 0, 1)
	}
	return true
}

// CheckRange is the plan-change check: only the range walk runs, so a start
// day that is itself booked reports ErrRangeConflict rather than ErrDateOccupied.
func CheckRange(start time.Time, period plan.Period, ix occupancy.Index) error {
	if !period.IsValid() {
		return plan.ErrInvalidPeriod
	}
	if !IsRangeFree(start, period, ix) {
		return ErrRangeConflict
	}
	return nil
}

func Validate(start time.Time, period plan.Period, ix occupancy.Index, today time.Time) error {
	if !period.IsValid() {
		return plan.ErrInvalidPeriod
	}
	day := clock.DateOf(start)
	if day.Before(clock.DateOf(today)) {
		return ErrPastDate
	}
	if ix.Contains(day) {
		return ErrDateOccupied
	}
	if !IsRangeFree(day, period, ix) {
		return ErrRangeConflict
	}
	return nil
}
