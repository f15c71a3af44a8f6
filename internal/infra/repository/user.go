package repository

import (
	"context"
	"log/slog"
	"time"

	"pontomais/internal/domain/user"
	"pontomais/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, phone, password_hash, role, profile_type, join_date, updated_at`

type UserRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewUserRepository(db DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID(), u.Name(), u.Email().Value(), u.Phone(), u.PasswordHash(),
		u.Role().String(), u.ProfileType().String(), u.JoinDate(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $2, phone = $3, password_hash = $4, role = $5, profile_type = $6, updated_at = $7
		WHERE id = $1`,
		u.ID(), u.Name(), u.Phone(), u.PasswordHash(),
		u.Role().String(), u.ProfileType().String(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY join_date, email`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list users", err)
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list users", err)
	}
	return out, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id        uuid.UUID
		name      string
		email     string
		phone     string
		hash      string
		role      string
		profile   string
		joinDate  time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &email, &phone, &hash, &role, &profile, &joinDate, &updatedAt); err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		id, name, e, phone, hash,
		user.Role(role), user.ProfileType(profile),
		joinDate, updatedAt,
	), nil
}
