//go:build unit

package point_test

import (
	"testing"

	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PointBuilder)
	errIs  error
}

func TestPoint(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := builder.NewPointBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Loja Centro Histórico", p.Title())
		assert.Equal(t, 3, p.Catalog().Len())
		assert.False(t, p.IsHidden())
		assert.Equal(t, int64(0), p.Version())
	})

	t.Run("入力検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "タイトル空NG",
				mutate: func(b *builder.PointBuilder) { b.WithTitle("  ") },
				errIs:  point.ErrEmptyTitle,
			},
			{
				name:   "都市空NG",
				mutate: func(b *builder.PointBuilder) { b.WithCity("") },
				errIs:  point.ErrEmptyCity,
			},
			{
				name:   "人通り不正NG",
				mutate: func(b *builder.PointBuilder) { b.FootTraffic = "Enorme" },
				errIs:  point.ErrInvalidFootTraffic,
			},
			{
				name: "プランなしNG",
				mutate: func(b *builder.PointBuilder) {
					for _, p := range plan.Periods() {
						b.WithoutPeriod(p)
					}
				},
				errIs: point.ErrNoRentalOptions,
			},
			{
				name:   "一部プランのみOK",
				mutate: func(b *builder.PointBuilder) { b.WithoutPeriod(plan.PeriodTrimestral) },
			},
		})
	})

	t.Run("非表示と再表示", func(t *testing.T) {
		p := builder.NewPointBuilder().MustBuildDomain()
		p.Hide()
		assert.True(t, p.IsHidden())
		p.Unhide()
		assert.False(t, p.IsHidden())
	})

	t.Run("掲載編集は空の画像でギャラリーを維持", func(t *testing.T) {
		p := builder.NewPointBuilder().MustBuildDomain()
		o, err := plan.NewOption(plan.PeriodMensal, decimal.NewFromInt(2000))
		require.NoError(t, err)

		err = p.ApplyListingEdit(point.ListingEdit{
			Title:       "Novo título",
			Location:    "Av. Brasil, 1",
			City:        "Curitiba, PR",
			Description: "nova",
			Features:    []string{"Wi-Fi"},
			Options:     []plan.Option{o},
		})
		require.NoError(t, err)

		assert.Equal(t, "Novo título", p.Title())
		assert.Equal(t, []string{"https://example.com/loja.jpg"}, p.Images())
		assert.Equal(t, "Centro", p.Neighborhood())
		assert.Equal(t, point.FootTrafficHigh, p.FootTraffic())
		assert.Equal(t, 1, p.Catalog().Len())
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("スナップショットは深いコピー", func(t *testing.T) {
		p := builder.NewPointBuilder().MustBuildDomain()
		snap, err := p.Snapshot()
		require.NoError(t, err)

		require.NoError(t, p.Update(func() point.Details {
			d := p.Details()
			d.Title = "Alterado"
			d.Images = []string{"https://example.com/outra.jpg"}
			return d
		}()))

		assert.Equal(t, "Loja Centro Histórico", snap.Title)
		assert.Equal(t, []string{"https://example.com/loja.jpg"}, snap.Images)
	})

	t.Run("価格は保持される", func(t *testing.T) {
		p := builder.NewPointBuilder().MustBuildDomain()
		snap, err := p.Snapshot()
		require.NoError(t, err)

		require.Len(t, snap.RentalOptions, 3)
		assert.Equal(t, "Quinzenal", snap.RentalOptions[0].Period)
		assert.True(t, decimal.NewFromInt(1500).Equal(snap.RentalOptions[0].Price))
		assert.Len(t, snap.Options(), 3)
	})

	t.Run("クローンはスライスを共有しない", func(t *testing.T) {
		snap, err := builder.NewPointBuilder().MustBuildDomain().Snapshot()
		require.NoError(t, err)

		cp, err := snap.Clone()
		require.NoError(t, err)
		cp.Features[0] = "x"

		assert.Equal(t, "Vitrine", snap.Features[0])
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewPointBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
