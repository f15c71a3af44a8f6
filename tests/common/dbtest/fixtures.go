//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pontomais/internal/domain/point"
	"pontomais/internal/infra"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/infra/repository"
	"pontomais/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// CreateTestUser inserts an account that signs in with TestPassword.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.Hash(TestPassword)
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, role, profile_type, join_date, updated_at)
		VALUES ($1, $2, $3, '', $4, $5, 'corretor_autonomo', $6, $6)
		ON CONFLICT (email) DO NOTHING`,
		userID, "Test User", strings.ToLower(email), hash, role, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
	}

	return userID
}

// SeedReferenceData inserts the demo catalog. Points already present (the seed
// migration adds them) are left alone.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	points := repository.NewPointRepository(pool, slog.Default())
	for _, p := range memstore.DemoPoints() {
		_, err := points.FindByID(ctx, p.ID())
		if err == nil {
			continue
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if err := points.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// DemoPoint returns the seeded point with the given title.
func DemoPoint(t *testing.T, title string) *point.Point {
	t.Helper()
	for _, p := range memstore.DemoPoints() {
		if p.Title() == title {
			return p
		}
	}
	require.Failf(t, "unknown demo point", "title %q", title)
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
