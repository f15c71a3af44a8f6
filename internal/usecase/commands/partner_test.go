//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/partner"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"
	"pontomais/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogAll = catalog.Filter{}

type partnerFixture struct {
	store   *memstore.Store
	cmds    commands.PartnerCommands
	catalog queries.CatalogQueries
}

func newPartnerFixture() partnerFixture {
	store := memstore.New(slog.Default())
	clk := clock.NewMockClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	return partnerFixture{
		store:   store,
		cmds:    commands.NewPartnerCommands(store, clk),
		catalog: queries.NewCatalogQueries(store),
	}
}

func submitRequest(b *builder.PartnerRequestBuilder) reqdto.SubmitPartnerRequest {
	s := b.BuildSubmission()
	return reqdto.SubmitPartnerRequest{
		OwnerName:         s.OwnerName,
		Email:             s.Email,
		Phone:             s.Phone,
		EstablishmentName: s.EstablishmentName,
		CNPJ:              s.CNPJ,
		Address:           s.Address,
		City:              s.City,
		Description:       s.Description,
		Features:          s.Features,
		Images:            s.Images,
		Prices: reqdto.PricesRequest{
			Quinzenal:  s.Prices.Quinzenal,
			Mensal:     s.Prices.Mensal,
			Trimestral: s.Prices.Trimestral,
		},
	}
}

func editRequest(name string, mensal int64) reqdto.EditPartnerRequest {
	return reqdto.EditPartnerRequest{
		EstablishmentName: name,
		City:              "São Paulo, SP",
		Description:       "Quiosque reformado",
		Features:          []string{"Wi-Fi", "Energia"},
		Prices: reqdto.PricesRequest{
			Quinzenal:  decimal.NewFromInt(900),
			Mensal:     decimal.NewFromInt(mensal),
			Trimestral: decimal.NewFromInt(4000),
		},
	}
}

func TestSubmitAndApprove(t *testing.T) {
	ctx := context.Background()
	f := newPartnerFixture()

	submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder().WithEmail("Parceiro@Example.com")))
	require.NoError(t, err)
	assert.Equal(t, "pending", submitted.Status)
	assert.Equal(t, "parceiro@example.com", submitted.Email)
	assert.Nil(t, submitted.PointID)

	approved, err := f.cmds.Approve(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ResolvedAt)
	require.NotNil(t, approved.PointID)

	pt, err := f.catalog.Get(ctx, *approved.PointID)
	require.NoError(t, err)
	assert.Equal(t, "Galeria Paulista", pt.Title)
	assert.Equal(t, "Bela Vista", pt.Neighborhood)
	assert.Equal(t, "SP", pt.State)
	assert.Len(t, pt.RentalOptions, 3)

	t.Run("approval happens once", func(t *testing.T) {
		_, err := f.cmds.Approve(ctx, submitted.ID)
		assert.ErrorIs(t, err, partner.ErrRequestAlreadyResolved)
		_, err = f.cmds.Reject(ctx, submitted.ID)
		assert.ErrorIs(t, err, partner.ErrRequestAlreadyResolved)

		points, err := f.catalog.List(ctx, catalogAll)
		require.NoError(t, err)
		assert.Len(t, points, 1)
	})
}

func TestSubmitValidation(t *testing.T) {
	f := newPartnerFixture()

	_, err := f.cmds.Submit(context.Background(), submitRequest(builder.NewPartnerRequestBuilder().WithPrices(799, 1500, 4000)))
	assert.ErrorIs(t, err, partner.ErrPriceBelowMinimum)

	_, err = f.cmds.Submit(context.Background(), submitRequest(builder.NewPartnerRequestBuilder().With(func(b *builder.PartnerRequestBuilder) {
		b.CNPJ = " "
	})))
	assert.ErrorIs(t, err, partner.ErrMissingField)
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	f := newPartnerFixture()

	submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder()))
	require.NoError(t, err)

	rejected, err := f.cmds.Reject(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Nil(t, rejected.PointID)

	_, err = f.cmds.Approve(ctx, submitted.ID)
	assert.ErrorIs(t, err, partner.ErrRequestAlreadyResolved)

	_, err = f.cmds.Approve(ctx, uuid.New())
	assert.ErrorIs(t, err, commands.ErrRequestNotFound)
}

func TestEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request does not touch any point", func(t *testing.T) {
		f := newPartnerFixture()
		submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder()))
		require.NoError(t, err)

		edited, err := f.cmds.Edit(ctx, submitted.ID, editRequest("Galeria Nova", 1600), "parceiro@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Galeria Nova", edited.EstablishmentName)
		assert.Equal(t, submitted.Phone, edited.Phone, "blank phone keeps the old one")
		assert.Equal(t, submitted.Images, edited.Images, "empty images keep the gallery")
		assert.True(t, decimal.NewFromInt(1600).Equal(edited.Prices.Mensal))

		points, err := f.catalog.List(ctx, catalogAll)
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("approved request propagates to its point", func(t *testing.T) {
		f := newPartnerFixture()
		submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder()))
		require.NoError(t, err)
		approved, err := f.cmds.Approve(ctx, submitted.ID)
		require.NoError(t, err)
		before, err := f.catalog.Get(ctx, *approved.PointID)
		require.NoError(t, err)

		_, err = f.cmds.Edit(ctx, submitted.ID, editRequest("Galeria Nova", 1600), "PARCEIRO@example.com")
		require.NoError(t, err)

		after, err := f.catalog.Get(ctx, *approved.PointID)
		require.NoError(t, err)
		assert.Equal(t, "Galeria Nova", after.Title)
		assert.Equal(t, "Quiosque reformado", after.Description)
		assert.Equal(t, before.Images, after.Images)
		assert.Greater(t, after.Version, before.Version)
		for _, o := range after.RentalOptions {
			if o.Period == "Mensal" {
				assert.True(t, decimal.NewFromInt(1600).Equal(o.Price))
			}
		}
	})

	t.Run("other accounts cannot edit", func(t *testing.T) {
		f := newPartnerFixture()
		submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder()))
		require.NoError(t, err)

		_, err = f.cmds.Edit(ctx, submitted.ID, editRequest("Galeria Nova", 1600), "intruso@example.com")
		assert.ErrorIs(t, err, commands.ErrNotRequestOwner)
	})

	t.Run("prices below the minimum are refused", func(t *testing.T) {
		f := newPartnerFixture()
		submitted, err := f.cmds.Submit(ctx, submitRequest(builder.NewPartnerRequestBuilder()))
		require.NoError(t, err)

		_, err = f.cmds.Edit(ctx, submitted.ID, editRequest("Galeria Nova", 1000), "parceiro@example.com")
		assert.ErrorIs(t, err, partner.ErrPriceBelowMinimum)
	})
}
