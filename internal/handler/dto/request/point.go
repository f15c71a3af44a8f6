package request

import (
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"

	"github.com/shopspring/decimal"
)

// A nil price drops that period from the listing.
type OptionalPricesRequest struct {
	Quinzenal  *decimal.Decimal `json:"quinzenal"`
	Mensal     *decimal.Decimal `json:"mensal"`
	Trimestral *decimal.Decimal `json:"trimestral"`
}

type UpdatePointRequest struct {
	Title        string                `json:"title" binding:"required,max=160"`
	Location     string                `json:"location"`
	Neighborhood string                `json:"neighborhood"`
	City         string                `json:"city" binding:"required"`
	Images       []string              `json:"images" binding:"omitempty,dive,url"`
	FootTraffic  string                `json:"footTraffic" binding:"required,oneof=Baixo Médio Alto"`
	Description  string                `json:"description" binding:"max=4000"`
	Category     string                `json:"category"`
	Features     []string              `json:"features"`
	Prices       OptionalPricesRequest `json:"prices"`
}

func (r *UpdatePointRequest) ToDomain() (point.Details, error) {
	ft, err := point.NewFootTraffic(r.FootTraffic)
	if err != nil {
		return point.Details{}, err
	}

	prices := map[plan.Period]*decimal.Decimal{
		plan.PeriodQuinzenal:  r.Prices.Quinzenal,
		plan.PeriodMensal:     r.Prices.Mensal,
		plan.PeriodTrimestral: r.Prices.Trimestral,
	}
	var opts []plan.Option
	for _, p := range plan.Periods() {
		price := prices[p]
		if price == nil {
			continue
		}
		o, err := plan.NewOption(p, *price)
		if err != nil {
			return point.Details{}, err
		}
		opts = append(opts, o)
	}

	return point.Details{
		Title:        r.Title,
		Location:     r.Location,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		Images:       r.Images,
		FootTraffic:  ft,
		Description:  r.Description,
		Category:     r.Category,
		Features:     r.Features,
		Options:      opts,
	}, nil
}
