// Package occupancy derives the set of calendar days a point is already booked for.
package occupancy

import (
	"slices"
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/pkg/clock"

	"github.com/google/uuid"
)

const keyLayout = "2006-01-02"

// Key identifies a civil day; time of day never affects it.
type Key string

func KeyOf(t time.Time) Key {
	return Key(clock.DateOf(t).Format(keyLayout))
}

func (k Key) Time() (time.Time, error) {
	return time.ParseInLocation(keyLayout, string(k), time.UTC)
}

type Index struct {
	days map[Key]struct{}
}

// Build includes every day, start through end inclusive, of the point's upcoming
// and active bookings. Completed bookings free their days.
func Build(bookings []*booking.Booking, pointID uuid.UUID, now time.Time) Index {
	ix := Index{days: make(map[Key]struct{})}
	for _, b := range bookings {
		if b.PointID() != pointID || !b.Status(now).Blocks() {
			continue
		}
		end := clock.DateOf(b.EndDate())
		for d := clock.DateOf(b.StartDate()); !d.After(end); d = d.AddDate(0, 0, 1) {
			ix.days[KeyOf(d)] = struct{}{}
		}
	}
	return ix
}

func FromKeys(keys []Key) Index {
	ix := Index{days: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		ix.days[k] = struct{}{}
	}
	return ix
}

func (ix Index) Contains(t time.Time) bool {
	_, ok := ix.days[KeyOf(t)]
	return ok
}

func (ix Index) Len() int {
	return len(ix.days)
}

// Keys are sorted ascending.
func (ix Index) Keys() []Key {
	keys := make([]Key, 0, len(ix.days))
	for k := range ix.days {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
