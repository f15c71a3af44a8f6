//go:build unit || e2e

package builder

import (
	"time"

	"pontomais/internal/domain/partner"

	"github.com/shopspring/decimal"
)

type PartnerRequestBuilder struct {
	OwnerName         string
	Email             string
	Phone             string
	EstablishmentName string
	CNPJ              string
	Address           string
	City              string
	Description       string
	Features          []string
	Images            []string
	Quinzenal         int64
	Mensal            int64
	Trimestral        int64
	RequestDate       time.Time
}

func NewPartnerRequestBuilder() *PartnerRequestBuilder {
	return &PartnerRequestBuilder{
		OwnerName:         "Carlos Lima",
		Email:             "parceiro@example.com",
		Phone:             "(11) 98888-7777",
		EstablishmentName: "Galeria Paulista",
		CNPJ:              "12.345.678/0001-90",
		Address:           "Av. Paulista 1000, Bela Vista",
		City:              "São Paulo, SP",
		Description:       "Quiosque no corredor principal",
		Features:          []string{"Wi-Fi"},
		Images:            []string{"https://example.com/galeria.jpg"},
		Quinzenal:         900,
		Mensal:            1500,
		Trimestral:        4000,
		RequestDate:       time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PartnerRequestBuilder) With(mutate func(*PartnerRequestBuilder)) *PartnerRequestBuilder {
	mutate(b)
	return b
}

func (b *PartnerRequestBuilder) WithEmail(email string) *PartnerRequestBuilder {
	b.Email = email
	return b
}

func (b *PartnerRequestBuilder) WithAddress(addr string) *PartnerRequestBuilder {
	b.Address = addr
	return b
}

func (b *PartnerRequestBuilder) WithoutImages() *PartnerRequestBuilder {
	b.Images = nil
	return b
}

func (b *PartnerRequestBuilder) WithPrices(q, m, t int64) *PartnerRequestBuilder {
	b.Quinzenal, b.Mensal, b.Trimestral = q, m, t
	return b
}

func (b *PartnerRequestBuilder) Prices() partner.Prices {
	return partner.Prices{
		Quinzenal:  decimal.NewFromInt(b.Quinzenal),
		Mensal:     decimal.NewFromInt(b.Mensal),
		Trimestral: decimal.NewFromInt(b.Trimestral),
	}
}

func (b *PartnerRequestBuilder) BuildSubmission() partner.Submission {
	return partner.Submission{
		OwnerName:         b.OwnerName,
		Email:             b.Email,
		Phone:             b.Phone,
		EstablishmentName: b.EstablishmentName,
		CNPJ:              b.CNPJ,
		Address:           b.Address,
		City:              b.City,
		Description:       b.Description,
		Features:          append([]string(nil), b.Features...),
		Images:            append([]string(nil), b.Images...),
		Prices:            b.Prices(),
	}
}

// Build methods
func (b *PartnerRequestBuilder) BuildDomain() (*partner.Request, error) {
	return partner.Submit(b.BuildSubmission(), b.RequestDate)
}

func (b *PartnerRequestBuilder) MustBuildDomain() *partner.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
