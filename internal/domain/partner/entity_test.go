//go:build unit

package partner_test

import (
	"testing"
	"time"

	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PartnerRequestBuilder)
	errIs  error
}

var now = time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)

func TestSubmit(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		r, err := builder.NewPartnerRequestBuilder().WithEmail(" Parceiro@Example.com ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, partner.StatusPending, r.Status())
		assert.Equal(t, "parceiro@example.com", r.Email())
		assert.Nil(t, r.PointID())
		assert.Nil(t, r.ResolvedAt())
	})

	t.Run("必須項目", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "オーナー名空NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.OwnerName = "" },
				errIs:  partner.ErrMissingField,
			},
			{
				name:   "CNPJ空NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.CNPJ = " " },
				errIs:  partner.ErrMissingField,
			},
			{
				name:   "説明空NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.Description = "" },
				errIs:  partner.ErrMissingField,
			},
			{
				name:   "画像なしOK",
				mutate: func(b *builder.PartnerRequestBuilder) { b.WithoutImages() },
			},
		})
	})

	t.Run("最低価格", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "最低価格ちょうどOK",
				mutate: func(b *builder.PartnerRequestBuilder) { b.WithPrices(800, 1400, 3800) },
			},
			{
				name:   "15日プラン不足NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.WithPrices(799, 1400, 3800) },
				errIs:  partner.ErrPriceBelowMinimum,
			},
			{
				name:   "30日プラン不足NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.WithPrices(800, 1399, 3800) },
				errIs:  partner.ErrPriceBelowMinimum,
			},
			{
				name:   "90日プラン不足NG",
				mutate: func(b *builder.PartnerRequestBuilder) { b.WithPrices(800, 1400, 3799) },
				errIs:  partner.ErrPriceBelowMinimum,
			},
		})
	})
}

func TestApprove(t *testing.T) {
	t.Run("承認で物件情報を導出", func(t *testing.T) {
		r := builder.NewPartnerRequestBuilder().MustBuildDomain()

		d, err := r.Approve(now)
		require.NoError(t, err)

		assert.Equal(t, partner.StatusApproved, r.Status())
		require.NotNil(t, r.ResolvedAt())
		assert.Equal(t, "Galeria Paulista", d.Title)
		assert.Equal(t, "Bela Vista", d.Neighborhood)
		assert.Equal(t, "Comércio", d.Category)
		assert.Equal(t, point.FootTrafficMedium, d.FootTraffic)
		assert.Equal(t, []string{"https://example.com/galeria.jpg"}, d.Images)
		require.Len(t, d.Options, 3)
		assert.Equal(t, plan.PeriodTrimestral, d.Options[2].Period())
		assert.True(t, decimal.NewFromInt(4000).Equal(d.Options[2].Price()))

		_, err = point.New(d)
		require.NoError(t, err)
	})

	t.Run("画像なしは既定画像", func(t *testing.T) {
		r := builder.NewPartnerRequestBuilder().WithoutImages().MustBuildDomain()
		d, err := r.Approve(now)
		require.NoError(t, err)
		assert.Equal(t, []string{partner.DefaultImage}, d.Images)
	})

	t.Run("住所にカンマがなければCentro", func(t *testing.T) {
		assert.Equal(t, "Centro", partner.NeighborhoodOf("Rua das Flores 12"))
		assert.Equal(t, "Centro", partner.NeighborhoodOf("Rua das Flores 12,  "))
		assert.Equal(t, "Batel", partner.NeighborhoodOf("Rua X 1, Batel, Curitiba"))
	})

	t.Run("承認は一度だけ", func(t *testing.T) {
		r := builder.NewPartnerRequestBuilder().MustBuildDomain()
		_, err := r.Approve(now)
		require.NoError(t, err)

		_, err = r.Approve(now)
		require.ErrorIs(t, err, partner.ErrRequestAlreadyResolved)
		require.ErrorIs(t, r.Reject(now), partner.ErrRequestAlreadyResolved)
		assert.Equal(t, partner.StatusApproved, r.Status())
	})

	t.Run("却下後は承認できない", func(t *testing.T) {
		r := builder.NewPartnerRequestBuilder().MustBuildDomain()
		require.NoError(t, r.Reject(now))
		_, err := r.Approve(now)
		require.ErrorIs(t, err, partner.ErrRequestAlreadyResolved)
		assert.Equal(t, partner.StatusRejected, r.Status())
	})
}

func TestApplyEdit(t *testing.T) {
	edit := func(b *builder.PartnerRequestBuilder) partner.Edit {
		return partner.Edit{
			EstablishmentName: "Galeria Paulista II",
			Address:           "Av. Paulista 1200, Bela Vista",
			City:              "São Paulo, SP",
			Description:       "Ampliado",
			Features:          []string{"Wi-Fi", "Estacionamento"},
			Prices:            b.Prices(),
		}
	}

	t.Run("未承認の申請は伝播しない", func(t *testing.T) {
		b := builder.NewPartnerRequestBuilder()
		r := b.MustBuildDomain()

		prop, err := r.ApplyEdit(edit(b))
		require.NoError(t, err)
		assert.Nil(t, prop)
		assert.Equal(t, "Galeria Paulista II", r.Submission().EstablishmentName)
		assert.Equal(t, []string{"https://example.com/galeria.jpg"}, r.Submission().Images)
	})

	t.Run("承認済みはリンク先へ伝播", func(t *testing.T) {
		b := builder.NewPartnerRequestBuilder()
		r := b.MustBuildDomain()
		_, err := r.Approve(now)
		require.NoError(t, err)
		r.LinkPoint(uuid.New())

		e := edit(b)
		e.Images = []string{"https://example.com/nova.jpg"}
		prop, err := r.ApplyEdit(e)
		require.NoError(t, err)
		require.NotNil(t, prop)

		assert.Equal(t, "Galeria Paulista II", prop.Title)
		assert.Equal(t, "Av. Paulista 1200, Bela Vista", prop.Location)
		assert.Equal(t, []string{"https://example.com/nova.jpg"}, prop.Images)
		assert.Len(t, prop.Options, 3)
	})

	t.Run("最低価格未満NG", func(t *testing.T) {
		b := builder.NewPartnerRequestBuilder()
		r := b.MustBuildDomain()
		e := edit(b)
		e.Prices.Mensal = decimal.NewFromInt(100)

		_, err := r.ApplyEdit(e)
		require.ErrorIs(t, err, partner.ErrPriceBelowMinimum)
		assert.Equal(t, "Galeria Paulista", r.Submission().EstablishmentName)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewPartnerRequestBuilder().With(c.mutate).BuildDomain()

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
