package datepick

import (
	"time"

	"pontomais/internal/domain/occupancy"
	"pontomais/internal/pkg/clock"
)

type Day struct {
	Date       time.Time
	Number     int
	IsPast     bool
	IsOccupied bool
	IsToday    bool
	IsSelected bool
	Selectable bool
}

type Month struct {
	Year  int
	Month time.Month
	// blank cells before day 1 in a Sunday-first week
	LeadingBlanks int
	Days          []Day
}

func BuildMonth(year int, month time.Month, ix occupancy.Index, today time.Time, selected *time.Time) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	today = clock.DateOf(today)
	var sel time.Time
	if selected != nil {
		sel = clock.DateOf(*selected)
	}

	m := Month{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		day := Day{
			Date:       d,
			Number:     d.Day(),
			IsPast:     d.Before(today),
			IsOccupied: ix.Contains(d),
			IsToday:    d.Equal(today),
			IsSelected: selected != nil && d.Equal(sel),
		}
		day.Selectable = !day.IsPast && !day.IsOccupied
		m.Days = append(m.Days, day)
	}
	return m
}
