package repository

import (
	"context"
	"log/slog"

	"pontomais/internal/domain/booking"
	"pontomais/internal/infra"
	"pontomais/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, point_id, point_snapshot, period, price, start_date, end_date,
	purchase_date, user_email, transaction_code`

type BookingRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBookingRepository(db DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode booking", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		row.ID, row.PointID, row.PointSnapshot, row.Period, row.Price,
		row.StartDate, row.EndDate, row.PurchaseDate, row.UserEmail, row.TransactionCode,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByPoint(ctx context.Context, pointID uuid.UUID) ([]*booking.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE point_id = $1 ORDER BY start_date`, pointID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, email string) ([]*booking.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_email = $1 ORDER BY purchase_date DESC`, email)
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY purchase_date DESC`)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	return out, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var br converter.BookingRow
	err := row.Scan(
		&br.ID, &br.PointID, &br.PointSnapshot, &br.Period, &br.Price,
		&br.StartDate, &br.EndDate, &br.PurchaseDate, &br.UserEmail, &br.TransactionCode,
	)
	if err != nil {
		return nil, err
	}
	return converter.BookingFromRow(br)
}
