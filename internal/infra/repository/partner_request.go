package repository

import (
	"context"
	"log/slog"

	"pontomais/internal/domain/partner"
	"pontomais/internal/infra"
	"pontomais/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const partnerRequestColumns = `id, owner_name, email, phone, establishment_name, cnpj, address, city,
	description, features, images, price_quinzenal, price_mensal, price_trimestral, status,
	request_date, resolved_at, point_id`

type PartnerRequestRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewPartnerRequestRepository(db DBTX, logger *slog.Logger) *PartnerRequestRepository {
	return &PartnerRequestRepository{db: db, logger: logger}
}

func (r *PartnerRequestRepository) Create(ctx context.Context, req *partner.Request) error {
	row, err := converter.PartnerRequestToRow(req)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode partner request", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO partner_requests (`+partnerRequestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		row.ID, row.OwnerName, row.Email, row.Phone, row.EstablishmentName, row.CNPJ, row.Address,
		row.City, row.Description, row.Features, row.Images, row.PriceQuinzenal, row.PriceMensal,
		row.PriceTrimestral, row.Status, row.RequestDate, row.ResolvedAt, row.PointID,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create partner request", err)
	}
	return nil
}

func (r *PartnerRequestRepository) Update(ctx context.Context, req *partner.Request) error {
	row, err := converter.PartnerRequestToRow(req)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode partner request", err)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE partner_requests
		SET phone = $2, establishment_name = $3, address = $4, city = $5, description = $6,
			features = $7, images = $8, price_quinzenal = $9, price_mensal = $10, price_trimestral = $11,
			status = $12, resolved_at = $13, point_id = $14
		WHERE id = $1`,
		row.ID, row.Phone, row.EstablishmentName, row.Address, row.City, row.Description,
		row.Features, row.Images, row.PriceQuinzenal, row.PriceMensal, row.PriceTrimestral,
		row.Status, row.ResolvedAt, row.PointID,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to update partner request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "partner request not found", nil)
	}
	return nil
}

func (r *PartnerRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Request, error) {
	return r.findOne(ctx, `SELECT `+partnerRequestColumns+` FROM partner_requests WHERE id = $1`, id)
}

func (r *PartnerRequestRepository) LockByID(ctx context.Context, id uuid.UUID) (*partner.Request, error) {
	return r.findOne(ctx, `SELECT `+partnerRequestColumns+` FROM partner_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *PartnerRequestRepository) List(ctx context.Context, status *partner.Status) ([]*partner.Request, error) {
	if status == nil {
		return r.list(ctx, `SELECT `+partnerRequestColumns+` FROM partner_requests ORDER BY request_date DESC`)
	}
	return r.list(ctx, `SELECT `+partnerRequestColumns+` FROM partner_requests WHERE status = $1 ORDER BY request_date DESC`,
		status.String())
}

func (r *PartnerRequestRepository) ListByEmail(ctx context.Context, email string) ([]*partner.Request, error) {
	return r.list(ctx, `SELECT `+partnerRequestColumns+` FROM partner_requests WHERE email = $1 ORDER BY request_date DESC`, email)
}

func (r *PartnerRequestRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*partner.Request, error) {
	req, err := scanPartnerRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find partner request", err)
	}
	return req, nil
}

func (r *PartnerRequestRepository) list(ctx context.Context, query string, args ...any) ([]*partner.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list partner requests", err)
	}
	defer rows.Close()

	var out []*partner.Request
	for rows.Next() {
		req, err := scanPartnerRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan partner request", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list partner requests", err)
	}
	return out, nil
}

func scanPartnerRequest(row pgx.Row) (*partner.Request, error) {
	var pr converter.PartnerRequestRow
	err := row.Scan(
		&pr.ID, &pr.OwnerName, &pr.Email, &pr.Phone, &pr.EstablishmentName, &pr.CNPJ, &pr.Address,
		&pr.City, &pr.Description, &pr.Features, &pr.Images, &pr.PriceQuinzenal, &pr.PriceMensal,
		&pr.PriceTrimestral, &pr.Status, &pr.RequestDate, &pr.ResolvedAt, &pr.PointID,
	)
	if err != nil {
		return nil, err
	}
	return converter.PartnerRequestFromRow(pr)
}
