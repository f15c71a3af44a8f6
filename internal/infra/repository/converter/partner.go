package converter

import (
	"time"

	"pontomais/internal/domain/partner"
	"pontomais/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PartnerRequestRow struct {
	ID                uuid.UUID
	OwnerName         string
	Email             string
	Phone             string
	EstablishmentName string
	CNPJ              string
	Address           string
	City              string
	Description       string
	Features          []byte
	Images            []byte
	PriceQuinzenal    pgtype.Numeric
	PriceMensal       pgtype.Numeric
	PriceTrimestral   pgtype.Numeric
	Status            string
	RequestDate       time.Time
	ResolvedAt        pgtype.Timestamptz
	PointID           pgtype.UUID
}

func PartnerRequestToRow(r *partner.Request) (PartnerRequestRow, error) {
	s := r.Submission()
	features, err := marshalStrings(s.Features)
	if err != nil {
		return PartnerRequestRow{}, err
	}
	images, err := marshalStrings(s.Images)
	if err != nil {
		return PartnerRequestRow{}, err
	}
	return PartnerRequestRow{
		ID:                r.ID(),
		OwnerName:         s.OwnerName,
		Email:             s.Email,
		Phone:             s.Phone,
		EstablishmentName: s.EstablishmentName,
		CNPJ:              s.CNPJ,
		Address:           s.Address,
		City:              s.City,
		Description:       s.Description,
		Features:          features,
		Images:            images,
		PriceQuinzenal:    pgconv.DecimalToNumeric(s.Prices.Quinzenal),
		PriceMensal:       pgconv.DecimalToNumeric(s.Prices.Mensal),
		PriceTrimestral:   pgconv.DecimalToNumeric(s.Prices.Trimestral),
		Status:            r.Status().String(),
		RequestDate:       r.RequestDate(),
		ResolvedAt:        pgconv.TimePtrToPgtype(r.ResolvedAt()),
		PointID:           pgconv.UUIDPtrToPgtype(r.PointID()),
	}, nil
}

func PartnerRequestFromRow(row PartnerRequestRow) (*partner.Request, error) {
	features, err := unmarshalStrings(row.Features)
	if err != nil {
		return nil, err
	}
	images, err := unmarshalStrings(row.Images)
	if err != nil {
		return nil, err
	}
	status, err := partner.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	quinzenal, err := pgconv.DecimalFromNumeric(row.PriceQuinzenal)
	if err != nil {
		return nil, err
	}
	mensal, err := pgconv.DecimalFromNumeric(row.PriceMensal)
	if err != nil {
		return nil, err
	}
	trimestral, err := pgconv.DecimalFromNumeric(row.PriceTrimestral)
	if err != nil {
		return nil, err
	}

	s := partner.Submission{
		OwnerName:         row.OwnerName,
		Email:             row.Email,
		Phone:             row.Phone,
		EstablishmentName: row.EstablishmentName,
		CNPJ:              row.CNPJ,
		Address:           row.Address,
		City:              row.City,
		Description:       row.Description,
		Features:          features,
		Images:            images,
		Prices: partner.Prices{
			Quinzenal:  quinzenal,
			Mensal:     mensal,
			Trimestral: trimestral,
		},
	}
	return partner.Reconstruct(
		row.ID, s, status, row.RequestDate,
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
		pgconv.UUIDPtrFromPgtype(row.PointID),
	), nil
}
