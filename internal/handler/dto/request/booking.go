package request

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"pontomais/internal/domain/datepick"
	"pontomais/internal/domain/plan"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// StartDate accepts DD/MM/YYYY or YYYY-MM-DD.
type ConfirmBookingRequest struct {
	PointID   uuid.UUID `json:"pointId" binding:"required"`
	Period    string    `json:"period" binding:"required,period"`
	StartDate string    `json:"startDate" binding:"required"`
}

func (r ConfirmBookingRequest) ToDomain() (plan.Period, time.Time, error) {
	p, err := plan.NewPeriod(r.Period)
	if err != nil {
		return "", time.Time{}, err
	}
	start, err := datepick.ParseInput(r.StartDate)
	if err != nil {
		return "", time.Time{}, err
	}
	return p, start, nil
}

// Hash identifies the purchase for idempotency checks. The start date is hashed
// in ISO form, so both accepted input formats of the same day match.
func (r ConfirmBookingRequest) Hash() string {
	key := r
	if _, start, err := r.ToDomain(); err == nil {
		key.StartDate = start.Format(time.DateOnly)
	}
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(key)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

type AvailabilityRequest struct {
	Date   string `json:"date" binding:"required"`
	Period string `json:"period" binding:"required,period"`
}

func (r AvailabilityRequest) ToDomain() (plan.Period, time.Time, error) {
	p, err := plan.NewPeriod(r.Period)
	if err != nil {
		return "", time.Time{}, err
	}
	d, err := datepick.ParseInput(r.Date)
	if err != nil {
		return "", time.Time{}, err
	}
	return p, d, nil
}

// CalendarQuery: Month is YYYY-MM (defaults to the current month), Selected an optional date.
type CalendarQuery struct {
	Month    string `form:"month" binding:"omitempty,yearmonth"`
	Period   string `form:"period" binding:"omitempty,period"`
	Selected string `form:"selected"`
}

func (q CalendarQuery) ToDomain(today time.Time) (year int, month time.Month, period plan.Period, selected *time.Time, err error) {
	year, month = today.Year(), today.Month()
	if q.Month != "" {
		t, perr := time.Parse("2006-01", q.Month)
		if perr != nil {
			return 0, 0, "", nil, perr
		}
		year, month = t.Year(), t.Month()
	}
	period = plan.PeriodQuinzenal
	if q.Period != "" {
		if period, err = plan.NewPeriod(q.Period); err != nil {
			return 0, 0, "", nil, err
		}
	}
	if q.Selected != "" {
		d, perr := datepick.ParseInput(q.Selected)
		if perr != nil {
			return 0, 0, "", nil, perr
		}
		selected = &d
	}
	return year, month, period, selected, nil
}
