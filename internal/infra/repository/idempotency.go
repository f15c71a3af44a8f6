package repository

import (
	"context"
	"log/slog"

	"pontomais/internal/infra"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewIdempotencyRepository(db DBTX, logger *slog.Logger) *IdempotencyRepository {
	return &IdempotencyRepository{db: db, logger: logger}
}

func (r *IdempotencyRepository) Find(ctx context.Context, key uuid.UUID, userEmail string) (*shared.IdempotencyRecord, error) {
	rec := shared.IdempotencyRecord{Key: key, UserEmail: userEmail}
	err := r.db.QueryRow(ctx, `
		SELECT request_hash, booking_id, created_at
		FROM idempotency_keys
		WHERE key = $1 AND user_email = $2`,
		key, userEmail,
	).Scan(&rec.RequestHash, &rec.BookingID, &rec.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_email, request_hash, booking_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.Key, rec.UserEmail, rec.RequestHash, rec.BookingID, rec.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to save idempotency key", err)
	}
	return nil
}
