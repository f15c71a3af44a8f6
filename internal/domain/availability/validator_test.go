//go:build unit

package availability_test

import (
	"testing"
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one upcoming Quinzenal booking 2024-03-10..2024-03-24
func scenarioIndex(t *testing.T) occupancy.Index {
	t.Helper()
	pt := builder.NewPointBuilder().MustBuildDomain()
	b, err := builder.NewBookingBuilder().ForPoint(pt).
		WithPeriod(plan.PeriodQuinzenal).
		StartingOn(builder.Date(2024, time.March, 10)).
		BuildDomain()
	require.NoError(t, err)

	// stored range 10..24
	b = booking.Reconstruct(b.ID(), b.PointID(), b.Point(), b.Option(),
		b.StartDate(), builder.Date(2024, time.March, 24), b.PurchaseDate(), b.UserEmail(), b.TransactionCode())

	return occupancy.Build([]*booking.Booking{b}, pt.ID(), builder.Date(2024, time.March, 1))
}

func TestValidate(t *testing.T) {
	today := builder.Date(2024, time.March, 1)
	ix := scenarioIndex(t)

	cases := []struct {
		name   string
		start  time.Time
		period plan.Period
		errIs  error
	}{
		{"予約最終日の開始はDateOccupied", builder.Date(2024, time.March, 24), plan.PeriodQuinzenal, availability.ErrDateOccupied},
		{"予約最終日はどのプランでもDateOccupied", builder.Date(2024, time.March, 24), plan.PeriodTrimestral, availability.ErrDateOccupied},
		{"翌日開始の15日プランOK", builder.Date(2024, time.March, 25), plan.PeriodQuinzenal, nil},
		{"範囲が重なるとRangeConflict", builder.Date(2024, time.March, 1), plan.PeriodMensal, availability.ErrRangeConflict},
		{"過去日はPastDate", builder.Date(2024, time.February, 29), plan.PeriodQuinzenal, availability.ErrPastDate},
		{"今日開始でも範囲が重なればRangeConflict", today, plan.PeriodQuinzenal, availability.ErrRangeConflict},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := availability.Validate(c.start, c.period, ix, today)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("時刻付きの今日はPastDateにならない", func(t *testing.T) {
		now := time.Date(2024, time.April, 1, 18, 0, 0, 0, time.UTC)
		err := availability.Validate(builder.Date(2024, time.April, 1), plan.PeriodQuinzenal, ix, now)
		require.NoError(t, err)
	})

	t.Run("未知のプランNG", func(t *testing.T) {
		err := availability.Validate(builder.Date(2024, time.May, 1), plan.Period("x"), ix, today)
		require.ErrorIs(t, err, plan.ErrInvalidPeriod)
	})
}

func TestPlanSwitchRevalidation(t *testing.T) {
	ix := scenarioIndex(t)
	start := builder.Date(2024, time.February, 20)
	today := builder.Date(2024, time.February, 1)

	require.NoError(t, availability.Validate(start, plan.PeriodQuinzenal, ix, today))
	err := availability.Validate(start, plan.PeriodMensal, ix, today)
	require.ErrorIs(t, err, availability.ErrRangeConflict)
}

func TestStartInsideBooking(t *testing.T) {
	ix := scenarioIndex(t)
	start := builder.Date(2024, time.March, 20)

	t.Run("full validation stops at the booked start day", func(t *testing.T) {
		err := availability.Validate(start, plan.PeriodMensal, ix, builder.Date(2024, time.March, 1))
		require.ErrorIs(t, err, availability.ErrDateOccupied)
	})

	t.Run("plan change reports the range conflict", func(t *testing.T) {
		err := availability.CheckRange(start, plan.PeriodMensal, ix)
		require.ErrorIs(t, err, availability.ErrRangeConflict)
		assert.False(t, availability.IsRangeFree(start, plan.PeriodMensal, ix))
	})
}

func TestCheckRange(t *testing.T) {
	ix := occupancy.FromKeys([]occupancy.Key{"2024-06-15"})

	assert.NoError(t, availability.CheckRange(builder.Date(2024, time.May, 31), plan.PeriodQuinzenal, ix))
	assert.ErrorIs(t, availability.CheckRange(builder.Date(2024, time.June, 1), plan.PeriodQuinzenal, ix), availability.ErrRangeConflict)
	assert.ErrorIs(t, availability.CheckRange(builder.Date(2024, time.June, 15), plan.PeriodMensal, ix), availability.ErrRangeConflict)
	assert.ErrorIs(t, availability.CheckRange(builder.Date(2024, time.June, 1), plan.Period("Anual"), ix), plan.ErrInvalidPeriod)
}

func TestIsRangeFree(t *testing.T) {
	ix := occupancy.FromKeys([]occupancy.Key{"2024-06-15"})

	assert.True(t, availability.IsRangeFree(builder.Date(2024, time.May, 31), plan.PeriodQuinzenal, ix))
	assert.False(t, availability.IsRangeFree(builder.Date(2024, time.June, 1), plan.PeriodQuinzenal, ix))
	assert.True(t, availability.IsRangeFree(builder.Date(2024, time.June, 16), plan.PeriodTrimestral, ix))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, availability.CodePastDate, availability.CodeOf(availability.ErrPastDate))
	assert.Equal(t, availability.CodeDateOccupied, availability.CodeOf(availability.ErrDateOccupied))
	assert.Equal(t, availability.CodeRangeConflict, availability.CodeOf(availability.ErrRangeConflict))
	assert.Equal(t, availability.CodeInvalidDate, availability.CodeOf(availability.ErrInvalidDate))
	assert.Equal(t, availability.CodeSlotUnavailable, availability.CodeOf(availability.ErrSlotUnavailable))
	assert.Equal(t, availability.Code(""), availability.CodeOf(plan.ErrInvalidPeriod))

	assert.Equal(t, "date cannot be in the past", availability.ErrPastDate.Error())
	assert.Equal(t, "this date is already taken", availability.ErrDateOccupied.Error())
	assert.Equal(t, "the selected plan's period conflicts with an existing reservation", availability.ErrRangeConflict.Error())
}
