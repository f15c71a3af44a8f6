//go:build unit || e2e

package builder

import (
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"

	"github.com/shopspring/decimal"
)

type PointBuilder struct {
	Title        string
	Location     string
	Neighborhood string
	City         string
	Images       []string
	FootTraffic  string
	Description  string
	Category     string
	Features     []string
	Prices       map[plan.Period]int64
	Hidden       bool
}

func NewPointBuilder() *PointBuilder {
	return &PointBuilder{
		Title:        "Loja Centro Histórico",
		Location:     "Rua XV de Novembro, 100",
		Neighborhood: "Centro",
		City:         "Curitiba, PR",
		Images:       []string{"https://example.com/loja.jpg"},
		FootTraffic:  "Alto",
		Description:  "Espaço comercial no calçadão",
		Category:     "Comércio",
		Features:     []string{"Vitrine", "Ar-condicionado"},
		Prices: map[plan.Period]int64{
			plan.PeriodQuinzenal:  1500,
			plan.PeriodMensal:     2400,
			plan.PeriodTrimestral: 6300,
		},
	}
}

func (b *PointBuilder) With(mutate func(*PointBuilder)) *PointBuilder {
	mutate(b)
	return b
}

func (b *PointBuilder) WithTitle(title string) *PointBuilder {
	b.Title = title
	return b
}

func (b *PointBuilder) WithCity(city string) *PointBuilder {
	b.City = city
	return b
}

func (b *PointBuilder) WithNeighborhood(n string) *PointBuilder {
	b.Neighborhood = n
	return b
}

func (b *PointBuilder) WithCategory(c string) *PointBuilder {
	b.Category = c
	return b
}

func (b *PointBuilder) WithPrice(p plan.Period, price int64) *PointBuilder {
	b.Prices[p] = price
	return b
}

func (b *PointBuilder) WithoutPeriod(p plan.Period) *PointBuilder {
	delete(b.Prices, p)
	return b
}

func (b *PointBuilder) AsHidden() *PointBuilder {
	b.Hidden = true
	return b
}

func (b *PointBuilder) BuildDetails() (point.Details, error) {
	opts := make([]plan.Option, 0, len(b.Prices))
	for _, p := range plan.Periods() {
		price, ok := b.Prices[p]
		if !ok {
			continue
		}
		o, err := plan.NewOption(p, decimal.NewFromInt(price))
		if err != nil {
			return point.Details{}, err
		}
		opts = append(opts, o)
	}
	return point.Details{
		Title:        b.Title,
		Location:     b.Location,
		Neighborhood: b.Neighborhood,
		City:         b.City,
		Images:       append([]string(nil), b.Images...),
		FootTraffic:  point.FootTraffic(b.FootTraffic),
		Description:  b.Description,
		Category:     b.Category,
		Features:     append([]string(nil), b.Features...),
		Options:      opts,
	}, nil
}

// Build methods
func (b *PointBuilder) BuildDomain() (*point.Point, error) {
	d, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	p, err := point.New(d)
	if err != nil {
		return nil, err
	}
	if b.Hidden {
		p.Hide()
	}
	return p, nil
}

func (b *PointBuilder) MustBuildDomain() *point.Point {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
