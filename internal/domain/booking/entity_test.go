//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize(t *testing.T) {
	t.Run("終了日はプラン日数を加算", func(t *testing.T) {
		cases := []struct {
			period plan.Period
			start  time.Time
			want   time.Time
		}{
			{plan.PeriodQuinzenal, builder.Date(2024, time.March, 25), builder.Date(2024, time.April, 9)},
			{plan.PeriodMensal, builder.Date(2024, time.March, 20), builder.Date(2024, time.April, 19)},
			{plan.PeriodTrimestral, builder.Date(2024, time.January, 1), builder.Date(2024, time.March, 31)},
		}
		for _, c := range cases {
			b, err := builder.NewBookingBuilder().WithPeriod(c.period).StartingOn(c.start).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, c.want, b.EndDate(), c.period)
		}
	})

	t.Run("時刻は日付に正規化", func(t *testing.T) {
		start := time.Date(2024, time.May, 2, 17, 45, 0, 0, time.UTC)
		b, err := builder.NewBookingBuilder().StartingOn(start).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, builder.Date(2024, time.May, 2), b.StartDate())
	})

	t.Run("記録の内容", func(t *testing.T) {
		pt := builder.NewPointBuilder().MustBuildDomain()
		b, err := builder.NewBookingBuilder().ForPoint(pt).WithBuyer("  Cliente@Example.com ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, pt.ID(), b.PointID())
		assert.Equal(t, pt.ID(), b.Point().ID)
		assert.Equal(t, "cliente@example.com", b.UserEmail())
		assert.Equal(t, "#PM4242", b.TransactionCode())
		assert.Equal(t, time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), b.PurchaseDate())
		assert.Equal(t, "1500", b.Amount().String())
	})

	t.Run("提供されていないプランNG", func(t *testing.T) {
		pt := builder.NewPointBuilder().WithoutPeriod(plan.PeriodTrimestral).MustBuildDomain()
		_, err := builder.NewBookingBuilder().ForPoint(pt).WithPeriod(plan.PeriodTrimestral).BuildDomain()
		require.ErrorIs(t, err, booking.ErrOptionNotOffered)
	})

	t.Run("非表示の物件NG", func(t *testing.T) {
		pt := builder.NewPointBuilder().AsHidden().MustBuildDomain()
		_, err := builder.NewBookingBuilder().ForPoint(pt).BuildDomain()
		require.ErrorIs(t, err, point.ErrPointHidden)
	})

	t.Run("購入者なしNG", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithBuyer(" ").BuildDomain()
		require.ErrorIs(t, err, booking.ErrEmptyBuyer)
	})

	t.Run("後の物件編集はスナップショットに影響しない", func(t *testing.T) {
		pt := builder.NewPointBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().ForPoint(pt).MustBuildDomain()

		d := pt.Details()
		d.Title = "Outro nome"
		require.NoError(t, pt.Update(d))

		assert.Equal(t, "Loja Centro Histórico", b.Point().Title)
		assert.Equal(t, "Loja Centro Histórico", b.Receipt().PointTitle)
	})
}

func TestStatus(t *testing.T) {
	b := builder.NewBookingBuilder().
		WithPeriod(plan.PeriodTrimestral).
		StartingOn(builder.Date(2024, time.January, 1)).
		MustBuildDomain()

	cases := []struct {
		name string
		now  time.Time
		want booking.Status
	}{
		{"開始前はupcoming", time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), booking.StatusUpcoming},
		{"開始日当日はactive", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), booking.StatusActive},
		{"終了日の夜もactive", time.Date(2024, time.March, 31, 22, 0, 0, 0, time.UTC), booking.StatusActive},
		{"終了翌日はcompleted", time.Date(2024, time.April, 1, 0, 0, 1, 0, time.UTC), booking.StatusCompleted},
		{"2024-12-01はcompleted", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), booking.StatusCompleted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, b.Status(c.now))
		})
	}

	t.Run("ローカル時刻の暦日で判定", func(t *testing.T) {
		sp := time.FixedZone("BRT", -3*60*60)
		// 2024-03-31 23:30 in São Paulo is already April 1st in UTC
		now := time.Date(2024, time.March, 31, 23, 30, 0, 0, sp)
		assert.Equal(t, booking.StatusActive, b.Status(now))
	})
}

func TestReconstructRoundTrip(t *testing.T) {
	orig := builder.NewBookingBuilder().MustBuildDomain()

	got := booking.Reconstruct(
		orig.ID(), orig.PointID(), orig.Point(), orig.Option(),
		orig.StartDate(), orig.EndDate(), orig.PurchaseDate(),
		orig.UserEmail(), orig.TransactionCode(),
	)

	assert.True(t, orig.StartDate().Equal(got.StartDate()))
	assert.True(t, orig.EndDate().Equal(got.EndDate()))
	now := builder.Date(2024, time.March, 15)
	assert.Equal(t, orig.Status(now), got.Status(now))
	assert.Equal(t, 15, got.DaysRented())
}

func TestRandomCodeGenerator(t *testing.T) {
	re := regexp.MustCompile(`^#PM\d{1,5}$`)
	gen := booking.NewRandomCodeGenerator()
	for range 200 {
		assert.Regexp(t, re, gen.Next())
	}
}
