package datepick

import (
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/internal/pkg/clock"
)

// Selector holds the state of one date selection session.
type Selector struct {
	period   plan.Period
	index    occupancy.Index
	today    time.Time
	view     time.Time
	selected *time.Time
	input    string
	err      error
}

func NewSelector(period plan.Period, ix occupancy.Index, today time.Time) *Selector {
	today = clock.DateOf(today)
	return &Selector{
		period: period,
		index:  ix,
		today:  today,
		view:   firstOfMonth(today),
	}
}

// Click ignores past and booked days. A day whose range collides is still
// selected, with the conflict reported through Err.
func (s *Selector) Click(day time.Time) {
	d := clock.DateOf(day)
	if d.Before(s.today) || s.index.Contains(d) {
		return
	}
	s.selected = &d
	s.input = Format(d)
	s.err = availability.Validate(d, s.period, s.index, s.today)
}

// Type feeds raw keyboard input through the mask. Only a complete date is validated.
func (s *Selector) Type(raw string) {
	s.input = Mask(raw)
	if len(s.input) < len(maskedLayout) {
		s.selected = nil
		s.err = nil
		return
	}

	d, err := Parse(s.input)
	if err == nil {
		err = availability.Validate(d, s.period, s.index, s.today)
	}
	if err != nil {
		s.selected = nil
		s.err = err
		return
	}

	s.selected = &d
	s.err = nil
	s.view = firstOfMonth(d)
}

// ChangePlan keeps the selection and re-walks its range for the new duration.
func (s *Selector) ChangePlan(p plan.Period) {
	s.period = p
	if s.selected == nil {
		return
	}
	s.err = availability.CheckRange(*s.selected, p, s.index)
}

func (s *Selector) NextMonth() { s.view = s.view.AddDate(0, 1, 0) }
func (s *Selector) PrevMonth() { s.view = s.view.AddDate(0, -1, 0) }

// Show jumps the displayed month. The selection is kept.
func (s *Selector) Show(year int, month time.Month) {
	s.view = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func (s *Selector) Month() Month {
	return BuildMonth(s.view.Year(), s.view.Month(), s.index, s.today, s.selected)
}

func (s *Selector) Selected() (time.Time, bool) {
	if s.selected == nil {
		return time.Time{}, false
	}
	return *s.selected, true
}

func (s *Selector) Period() plan.Period { return s.period }
func (s *Selector) Input() string       { return s.input }
func (s *Selector) Err() error          { return s.err }

func (s *Selector) CanProceed() bool {
	return s.selected != nil && s.err == nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
