package memstore

import (
	"time"

	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seed inserts points at version 1. Existing ids are overwritten.
func (s *Store) Seed(points ...*point.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, p := range points {
		s.data.points[p.ID()] = point.Reconstruct(p.ID(), p.Details(), p.IsHidden(), 1, now, now)
	}
}

// DemoPoints mirrors the listings seeded by the postgres migrations.
func DemoPoints() []*point.Point {
	return []*point.Point{
		demo("6f1c2a7e-0d2b-4c54-9a51-2f7d1b0e8a01", point.Details{
			Title:        "Loja Térrea Rua XV",
			Location:     "Rua XV de Novembro, 700",
			Neighborhood: "Centro",
			City:         "Curitiba, PR",
			Images:       []string{"https://images.unsplash.com/photo-1441986300917-64674bd600d8"},
			FootTraffic:  point.FootTrafficHigh,
			Description:  "Vitrine de frente para o calçadão, com grande circulação de pedestres.",
			Category:     "Comércio",
			Features:     []string{"Vitrine", "Ar-condicionado", "Banheiro"},
			Options: []plan.Option{
				mustOption(plan.PeriodQuinzenal, "1500"),
				mustOption(plan.PeriodMensal, "2400"),
				mustOption(plan.PeriodTrimestral, "6300"),
			},
		}),
		demo("6f1c2a7e-0d2b-4c54-9a51-2f7d1b0e8a02", point.Details{
			Title:        "Quiosque Shopping Paulista",
			Location:     "Av. Paulista, 1230",
			Neighborhood: "Bela Vista",
			City:         "São Paulo, SP",
			Images:       []string{"https://images.unsplash.com/photo-1519567241046-7f570eee3ce6"},
			FootTraffic:  point.FootTrafficHigh,
			Description:  "Quiosque no corredor principal do piso térreo.",
			Category:     "Quiosque",
			Features:     []string{"Energia", "Wi-Fi"},
			Options: []plan.Option{
				mustOption(plan.PeriodQuinzenal, "2000"),
				mustOption(plan.PeriodMensal, "3500"),
				mustOption(plan.PeriodTrimestral, "9000"),
			},
		}),
		demo("6f1c2a7e-0d2b-4c54-9a51-2f7d1b0e8a03", point.Details{
			Title:        "Sala Comercial Savassi",
			Location:     "Rua Pernambuco, 1000",
			Neighborhood: "Savassi",
			City:         "Belo Horizonte, MG",
			Images:       []string{"https://images.unsplash.com/photo-1497366216548-37526070297c"},
			FootTraffic:  point.FootTrafficMedium,
			Description:  "Sala no primeiro andar, ideal para showroom.",
			Category:     "Escritório",
			Features:     []string{"Elevador", "Estacionamento"},
			Options: []plan.Option{
				mustOption(plan.PeriodMensal, "1800"),
				mustOption(plan.PeriodTrimestral, "4800"),
			},
		}),
	}
}

func demo(id string, d point.Details) *point.Point {
	return point.Reconstruct(uuid.MustParse(id), d, false, 1, time.Time{}, time.Time{})
}

func mustOption(p plan.Period, price string) plan.Option {
	o, err := plan.NewOption(p, decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	return o
}
