//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/infra"
	"pontomais/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans fixed values into the destinations, or fails with err.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func sqlContaining(fragment string) any {
	return mock.MatchedBy(func(q string) bool { return strings.Contains(q, fragment) })
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestUserRepositoryWrites(t *testing.T) {
	u := builder.NewUserBuilder().MustBuildDomain()

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		call     func(r *UserRepository) error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "create",
			tag:  pgconn.NewCommandTag("INSERT 0 1"),
			call: func(r *UserRepository) error { return r.Create(context.Background(), u) },
		},
		{
			name:     "create with a taken email",
			execErr:  &pgconn.PgError{Code: "23505"},
			call:     func(r *UserRepository) error { return r.Create(context.Background(), u) },
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "update of a missing user",
			tag:      pgconn.NewCommandTag("UPDATE 0"),
			call:     func(r *UserRepository) error { return r.Update(context.Background(), u) },
			wantKind: infra.KindNotFound,
		},
		{
			name:     "delete on a broken connection",
			execErr:  assert.AnError,
			call:     func(r *UserRepository) error { return r.Delete(context.Background(), u.ID()) },
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(tt.tag, tt.execErr)

			err := tt.call(NewUserRepository(db, discard))

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepositoryFind(t *testing.T) {
	key := uuid.New()

	t.Run("found", func(t *testing.T) {
		bookingID := uuid.New()
		created := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, sqlContaining("FROM idempotency_keys"), mock.Anything).
			Return(stubRow{values: []any{"hash", bookingID, created}})

		rec, err := NewIdempotencyRepository(db, discard).Find(context.Background(), key, "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, key, rec.Key)
		assert.Equal(t, "hash", rec.RequestHash)
		assert.Equal(t, bookingID, rec.BookingID)
	})

	t.Run("unknown key", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewIdempotencyRepository(db, discard).Find(context.Background(), key, "ana@example.com")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPointRepositoryBumpVersion(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		exists   bool
		wantKind infra.RepositoryErrorKind
	}{
		{"stale version", true, infra.KindVersionConflict},
		{"point gone", false, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, sqlContaining("RETURNING version"), mock.Anything).
				Return(stubRow{err: pgx.ErrNoRows})
			db.On("QueryRow", mock.Anything, sqlContaining("SELECT EXISTS"), mock.Anything).
				Return(stubRow{values: []any{tt.exists}})

			_, err := NewPointRepository(db, discard).BumpVersion(context.Background(), id, 3)

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			db.AssertExpectations(t)
		})
	}

	t.Run("success returns the next version", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, sqlContaining("RETURNING version"), []any{id, int64(3)}).
			Return(stubRow{values: []any{int64(4)}})

		next, err := NewPointRepository(db, discard).BumpVersion(context.Background(), id, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(4), next)
	})
}

func TestBuildSearch(t *testing.T) {
	t.Run("public listing with every filter", func(t *testing.T) {
		query, args, err := buildSearch(catalog.Filter{
			State:        "PR",
			City:         "Curitiba, PR",
			Neighborhood: "Centro",
			Categories:   []string{"Comércio", "Quiosque"},
		}, false)

		require.NoError(t, err)
		assert.Contains(t, query, `"is_hidden" IS FALSE`)
		assert.Contains(t, query, `lower("state") = $1`)
		assert.Contains(t, query, `lower(btrim(split_part(city, ',', 1))) = $2`)
		assert.Contains(t, query, `lower("neighborhood") = $3`)
		assert.Contains(t, query, `"category" IN ($4, $5)`)
		assert.Equal(t, []any{"pr", "curitiba", "centro", "Comércio", "Quiosque"}, args)
	})

	t.Run("admin listing without filters", func(t *testing.T) {
		query, args, err := buildSearch(catalog.Filter{}, true)

		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, `ORDER BY "created_at" ASC, "title" ASC`)
		assert.Empty(t, args)
	})
}
