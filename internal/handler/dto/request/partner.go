package request

import (
	"pontomais/internal/domain/partner"

	"github.com/shopspring/decimal"
)

type PricesRequest struct {
	Quinzenal  decimal.Decimal `json:"quinzenal"`
	Mensal     decimal.Decimal `json:"mensal"`
	Trimestral decimal.Decimal `json:"trimestral"`
}

func (p PricesRequest) ToDomain() partner.Prices {
	return partner.Prices{
		Quinzenal:  p.Quinzenal,
		Mensal:     p.Mensal,
		Trimestral: p.Trimestral,
	}
}

type SubmitPartnerRequest struct {
	OwnerName         string        `json:"ownerName" binding:"required,max=120"`
	Email             string        `json:"email" binding:"required,email"`
	Phone             string        `json:"phone" binding:"required,max=40"`
	EstablishmentName string        `json:"establishmentName" binding:"required,max=160"`
	CNPJ              string        `json:"cnpj" binding:"required,max=20"`
	Address           string        `json:"address" binding:"required"`
	City              string        `json:"city" binding:"required"`
	Description       string        `json:"description" binding:"required,max=4000"`
	Features          []string      `json:"features"`
	Images            []string      `json:"images" binding:"omitempty,dive,url"`
	Prices            PricesRequest `json:"prices"`
}

func (r *SubmitPartnerRequest) ToDomain() partner.Submission {
	return partner.Submission{
		OwnerName:         r.OwnerName,
		Email:             r.Email,
		Phone:             r.Phone,
		EstablishmentName: r.EstablishmentName,
		CNPJ:              r.CNPJ,
		Address:           r.Address,
		City:              r.City,
		Description:       r.Description,
		Features:          r.Features,
		Images:            r.Images,
		Prices:            r.Prices.ToDomain(),
	}
}

// Empty Images keeps the current gallery.
type EditPartnerRequest struct {
	EstablishmentName string        `json:"establishmentName" binding:"required,max=160"`
	Phone             string        `json:"phone" binding:"max=40"`
	Address           string        `json:"address"`
	City              string        `json:"city" binding:"required"`
	Description       string        `json:"description" binding:"max=4000"`
	Features          []string      `json:"features"`
	Images            []string      `json:"images" binding:"omitempty,dive,url"`
	Prices            PricesRequest `json:"prices"`
}

func (r *EditPartnerRequest) ToDomain() partner.Edit {
	return partner.Edit{
		EstablishmentName: r.EstablishmentName,
		Phone:             r.Phone,
		Address:           r.Address,
		City:              r.City,
		Description:       r.Description,
		Features:          r.Features,
		Images:            r.Images,
		Prices:            r.Prices.ToDomain(),
	}
}

type ListRequestsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

func (q ListRequestsQuery) ToDomain() *partner.Status {
	if q.Status == "" {
		return nil
	}
	s := partner.Status(q.Status)
	return &s
}
