//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/infra"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/usecase/shared"
	"pontomais/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New(nil)
	s.Seed(memstore.DemoPoints()...)
	return s
}

func TestWithinRollsBackOnError(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	u := builder.NewUserBuilder().MustBuildDomain()
	boom := errors.New("boom")

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Users().Create(ctx, u))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().FindByID(ctx, u.ID())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestLoadedEntitiesAreCopies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	id := memstore.DemoPoints()[0].ID()

	// hiding a loaded point without saving it must not leak into the store
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Points().FindByID(ctx, id)
		if err != nil {
			return err
		}
		p.Hide()
		return nil
	}))

	require.NoError(t, s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		visible, err := tx.Points().Search(ctx, catalog.Filter{}, false)
		require.NoError(t, err)
		assert.Len(t, visible, 3)
		return nil
	}))
}

func TestUniqueEmail(t *testing.T) {
	s := memstore.New(nil)
	ctx := context.Background()

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, builder.NewUserBuilder().MustBuildDomain()); err != nil {
			return err
		}
		return tx.Users().Create(ctx, builder.NewUserBuilder().MustBuildDomain())
	})

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestPointVersioning(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	id := memstore.DemoPoints()[1].ID()

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		next, err := tx.Points().BumpVersion(ctx, id, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), next)

		_, err = tx.Points().BumpVersion(ctx, id, 1)
		assert.True(t, infra.IsKind(err, infra.KindVersionConflict))

		stale, err := tx.Points().FindByID(ctx, id)
		require.NoError(t, err)
		require.NoError(t, tx.Points().Update(ctx, stale))
		assert.True(t, infra.IsKind(tx.Points().Update(ctx, stale), infra.KindVersionConflict))
		return nil
	}))
}

func TestCancelledContext(t *testing.T) {
	s := memstore.New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
