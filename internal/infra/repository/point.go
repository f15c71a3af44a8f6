package repository

import (
	"context"
	"log/slog"
	"strings"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/point"
	"pontomais/internal/infra"
	"pontomais/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	dialectPostgres = "postgres"
	pointColumns    = `id, title, location, neighborhood, city, images, foot_traffic, description,
		category, features, rental_options, is_hidden, version, created_at, updated_at`
)

var pointSelectCols = []any{
	"id", "title", "location", "neighborhood", "city", "images", "foot_traffic", "description",
	"category", "features", "rental_options", "is_hidden", "version", "created_at", "updated_at",
}

type PointRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewPointRepository(db DBTX, logger *slog.Logger) *PointRepository {
	return &PointRepository{db: db, logger: logger}
}

func (r *PointRepository) Create(ctx context.Context, p *point.Point) error {
	row, err := converter.PointToRow(p)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode point", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO points (id, title, location, neighborhood, city, images, foot_traffic, description,
			category, features, rental_options, is_hidden, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, now(), now())`,
		row.ID, row.Title, row.Location, row.Neighborhood, row.City, row.Images, row.FootTraffic,
		row.Description, row.Category, row.Features, row.RentalOptions, row.IsHidden,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create point", err)
	}
	return nil
}

func (r *PointRepository) Update(ctx context.Context, p *point.Point) error {
	row, err := converter.PointToRow(p)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode point", err)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE points
		SET title = $3, location = $4, neighborhood = $5, city = $6, images = $7, foot_traffic = $8,
			description = $9, category = $10, features = $11, rental_options = $12, is_hidden = $13,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2`,
		row.ID, row.Version, row.Title, row.Location, row.Neighborhood, row.City, row.Images,
		row.FootTraffic, row.Description, row.Category, row.Features, row.RentalOptions, row.IsHidden,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to update point", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missOrConflict(ctx, p.ID())
	}
	return nil
}

func (r *PointRepository) FindByID(ctx context.Context, id uuid.UUID) (*point.Point, error) {
	return r.findOne(ctx, `SELECT `+pointColumns+` FROM points WHERE id = $1`, id)
}

func (r *PointRepository) LockByID(ctx context.Context, id uuid.UUID) (*point.Point, error) {
	return r.findOne(ctx, `SELECT `+pointColumns+` FROM points WHERE id = $1 FOR UPDATE`, id)
}

func (r *PointRepository) Search(ctx context.Context, f catalog.Filter, includeHidden bool) ([]*point.Point, error) {
	query, args, err := buildSearch(f, includeHidden)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build point search", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to search points", err)
	}
	defer rows.Close()

	var out []*point.Point
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan point", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to search points", err)
	}
	return out, nil
}

func (r *PointRepository) BumpVersion(ctx context.Context, id uuid.UUID, expected int64) (int64, error) {
	var next int64
	err := r.db.QueryRow(ctx, `
		UPDATE points SET version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version`,
		id, expected,
	).Scan(&next)
	if err != nil {
		if infra.Classify(err) == infra.KindNotFound {
			return 0, r.missOrConflict(ctx, id)
		}
		return 0, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to bump point version", err)
	}
	return next, nil
}

// buildSearch renders the catalog filter as SQL. Text matches are case-insensitive
// and the city filter compares the part before the comma, as catalog.Filter does.
func buildSearch(f catalog.Filter, includeHidden bool) (string, []any, error) {
	where := make([]goqu.Expression, 0, 5)
	if !includeHidden {
		where = append(where, goqu.C("is_hidden").IsFalse())
	}
	if f.State != "" {
		where = append(where, goqu.Func("lower", goqu.C("state")).Eq(strings.ToLower(f.State)))
	}
	if f.City != "" {
		where = append(where, goqu.L("lower(btrim(split_part(city, ',', 1)))").Eq(strings.ToLower(catalog.CityOf(f.City))))
	}
	if f.Neighborhood != "" {
		where = append(where, goqu.Func("lower", goqu.C("neighborhood")).Eq(strings.ToLower(f.Neighborhood)))
	}
	if len(f.Categories) > 0 {
		where = append(where, goqu.C("category").In(f.Categories))
	}

	return goqu.Dialect(dialectPostgres).
		From("points").
		Select(pointSelectCols...).
		Where(where...).
		Order(goqu.C("created_at").Asc(), goqu.C("title").Asc()).
		Prepared(true).
		ToSQL()
}

func (r *PointRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*point.Point, error) {
	p, err := scanPoint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find point", err)
	}
	return p, nil
}

func (r *PointRepository) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM points WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check point", err)
	}
	if !exists {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "point not found", nil)
	}
	return infra.WrapRepoErr(r.logger, infra.KindVersionConflict, "point version changed", nil)
}

func scanPoint(row pgx.Row) (*point.Point, error) {
	var pr converter.PointRow
	err := row.Scan(
		&pr.ID, &pr.Title, &pr.Location, &pr.Neighborhood, &pr.City, &pr.Images, &pr.FootTraffic,
		&pr.Description, &pr.Category, &pr.Features, &pr.RentalOptions, &pr.IsHidden, &pr.Version,
		&pr.CreatedAt, &pr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return converter.PointFromRow(pr)
}
