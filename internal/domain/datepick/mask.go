// Package datepick models the date selection surface: the masked DD/MM/YYYY
// field, the month grid and the selection state that ties both to the validator.
package datepick

import (
	"errors"
	"strings"
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/pkg/clock"
)

const (
	maskedLayout = "02/01/2006"
	isoLayout    = "2006-01-02"
	maxDigits    = 8
)

var ErrIncompleteDate = errors.New("date is incomplete")

// Mask keeps up to 8 digits of raw and renders them as DD/MM/YYYY progressively.
func Mask(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == maxDigits {
			break
		}
		b.WriteRune(r)
	}
	digits := b.String()

	switch {
	case len(digits) >= 5:
		return digits[:2] + "/" + digits[2:4] + "/" + digits[4:]
	case len(digits) >= 3:
		return digits[:2] + "/" + digits[2:]
	default:
		return digits
	}
}

// Parse accepts a complete masked date only if it names a real calendar day.
func Parse(masked string) (time.Time, error) {
	if len(masked) != len(maskedLayout) {
		return time.Time{}, ErrIncompleteDate
	}
	t, err := time.ParseInLocation(maskedLayout, masked, time.UTC)
	if err != nil || t.Format(maskedLayout) != masked {
		return time.Time{}, availability.ErrInvalidDate
	}
	return t, nil
}

// ParseInput accepts ISO YYYY-MM-DD or anything that masks to a full DD/MM/YYYY.
func ParseInput(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "-") {
		t, err := time.ParseInLocation(isoLayout, s, time.UTC)
		if err != nil {
			return time.Time{}, availability.ErrInvalidDate
		}
		return t, nil
	}
	t, err := Parse(Mask(s))
	if errors.Is(err, ErrIncompleteDate) {
		return time.Time{}, availability.ErrInvalidDate
	}
	return t, err
}

func Format(t time.Time) string {
	return clock.DateOf(t).Format(maskedLayout)
}
