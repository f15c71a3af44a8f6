//go:build unit

package datepick_test

import (
	"testing"
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/datepick"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "12/3"},
		{"1203", "12/03"},
		{"12032", "12/03/2"},
		{"12032024", "12/03/2024"},
		{"120320249999", "12/03/2024"},
		{"12/03/2024", "12/03/2024"},
		{"ab1c2-0x3", "12/03"},
		{"١٢", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, datepick.Mask(c.raw), c.raw)
	}
}

func TestParse(t *testing.T) {
	t.Run("完全な日付OK", func(t *testing.T) {
		got, err := datepick.Parse("25/03/2024")
		require.NoError(t, err)
		assert.Equal(t, builder.Date(2024, time.March, 25), got)
	})

	t.Run("存在しない日付はInvalidDate", func(t *testing.T) {
		for _, s := range []string{"31/02/2025", "29/02/2023", "00/01/2024", "15/13/2024"} {
			_, err := datepick.Parse(s)
			require.ErrorIs(t, err, availability.ErrInvalidDate, s)
		}
	})

	t.Run("うるう日OK", func(t *testing.T) {
		_, err := datepick.Parse("29/02/2024")
		require.NoError(t, err)
	})

	t.Run("未完成の入力", func(t *testing.T) {
		_, err := datepick.Parse("25/03/20")
		require.ErrorIs(t, err, datepick.ErrIncompleteDate)
	})

	t.Run("ISO形式も受け付ける", func(t *testing.T) {
		got, err := datepick.ParseInput("2024-03-25")
		require.NoError(t, err)
		assert.Equal(t, builder.Date(2024, time.March, 25), got)

		_, err = datepick.ParseInput("2025-02-31")
		require.ErrorIs(t, err, availability.ErrInvalidDate)

		_, err = datepick.ParseInput("25/03")
		require.ErrorIs(t, err, availability.ErrInvalidDate)
	})

	t.Run("書式化と往復", func(t *testing.T) {
		d := builder.Date(2024, time.January, 5)
		got, err := datepick.Parse(datepick.Format(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})
}

func TestBuildMonth(t *testing.T) {
	ix := occupancy.FromKeys([]occupancy.Key{"2024-03-10", "2024-03-11"})
	today := builder.Date(2024, time.March, 5)
	sel := builder.Date(2024, time.March, 20)

	m := datepick.BuildMonth(2024, time.March, ix, today, &sel)

	// 2024-03-01 is a Friday
	assert.Equal(t, 5, m.LeadingBlanks)
	require.Len(t, m.Days, 31)

	day := func(n int) datepick.Day { return m.Days[n-1] }
	assert.True(t, day(4).IsPast)
	assert.False(t, day(4).Selectable)
	assert.True(t, day(5).IsToday)
	assert.True(t, day(5).Selectable)
	assert.True(t, day(10).IsOccupied)
	assert.False(t, day(10).Selectable)
	assert.True(t, day(20).IsSelected)
	assert.False(t, day(21).IsSelected)

	feb := datepick.BuildMonth(2024, time.February, ix, today, nil)
	assert.Len(t, feb.Days, 29)
	assert.Equal(t, 4, feb.LeadingBlanks)
}

func TestSelector(t *testing.T) {
	// booked 2024-03-10..2024-03-24
	var keys []occupancy.Key
	for d := builder.Date(2024, time.March, 10); !d.After(builder.Date(2024, time.March, 24)); d = d.AddDate(0, 0, 1) {
		keys = append(keys, occupancy.KeyOf(d))
	}
	ix := occupancy.FromKeys(keys)
	today := builder.Date(2024, time.March, 1)

	newSelector := func() *datepick.Selector {
		return datepick.NewSelector(plan.PeriodQuinzenal, ix, today)
	}

	t.Run("過去日のクリックは無視", func(t *testing.T) {
		s := newSelector()
		s.Click(builder.Date(2024, time.February, 28))
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.NoError(t, s.Err())
	})

	t.Run("予約済み日のクリックは無視", func(t *testing.T) {
		s := newSelector()
		s.Click(builder.Date(2024, time.March, 12))
		_, ok := s.Selected()
		assert.False(t, ok)
	})

	t.Run("範囲衝突日のクリックは選択しエラー表示", func(t *testing.T) {
		s := newSelector()
		s.Click(builder.Date(2024, time.March, 2))
		got, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, builder.Date(2024, time.March, 2), got)
		assert.ErrorIs(t, s.Err(), availability.ErrRangeConflict)
		assert.False(t, s.CanProceed())
		assert.Equal(t, "02/03/2024", s.Input())
	})

	t.Run("有効な入力で選択し表示月を移動", func(t *testing.T) {
		s := newSelector()
		s.Type("25032024")
		got, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, builder.Date(2024, time.March, 25), got)
		assert.True(t, s.CanProceed())

		s.Type("01052024")
		assert.Equal(t, time.May, s.Month().Month)
	})

	t.Run("存在しない日付の入力は選択されない", func(t *testing.T) {
		s := newSelector()
		s.Type("31022025")
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.ErrorIs(t, s.Err(), availability.ErrInvalidDate)
	})

	t.Run("予約済み日の入力はエラーで選択解除", func(t *testing.T) {
		s := newSelector()
		s.Type("25032024")
		s.Type("24032024")
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.ErrorIs(t, s.Err(), availability.ErrDateOccupied)
	})

	t.Run("入力途中は選択もエラーも消える", func(t *testing.T) {
		s := newSelector()
		s.Type("31022025")
		s.Type("3102")
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.NoError(t, s.Err())
		assert.Equal(t, "31/02", s.Input())
	})

	t.Run("プラン変更で再検証", func(t *testing.T) {
		s := datepick.NewSelector(plan.PeriodQuinzenal, ix, builder.Date(2024, time.February, 1))
		s.Click(builder.Date(2024, time.February, 20))
		require.True(t, s.CanProceed())

		s.ChangePlan(plan.PeriodMensal)
		assert.ErrorIs(t, s.Err(), availability.ErrRangeConflict)
		_, ok := s.Selected()
		assert.True(t, ok, "selection is kept")

		s.ChangePlan(plan.PeriodQuinzenal)
		assert.NoError(t, s.Err())
		assert.True(t, s.CanProceed())
	})

	t.Run("月移動は選択を保持", func(t *testing.T) {
		s := newSelector()
		s.Type("25032024")
		s.NextMonth()
		assert.Equal(t, time.April, s.Month().Month)
		s.PrevMonth()
		s.PrevMonth()
		assert.Equal(t, time.February, s.Month().Month)
		_, ok := s.Selected()
		assert.True(t, ok)

		s.Show(2024, time.December)
		m := s.Month()
		assert.Equal(t, 2024, m.Year)
		assert.Equal(t, time.December, m.Month)
		_, ok = s.Selected()
		assert.True(t, ok)
	})
}
