package point

import (
	"pontomais/internal/domain/plan"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Snapshot is the frozen copy of a listing stored with each booking.
type Snapshot struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Location      string                 `json:"location"`
	Neighborhood  string                 `json:"neighborhood"`
	City          string                 `json:"city"`
	Images        []string               `json:"images"`
	FootTraffic   string                 `json:"footTraffic"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	Features      []string               `json:"features"`
	RentalOptions []RentalOptionSnapshot `json:"rentalOptions"`
}

type RentalOptionSnapshot struct {
	Period string          `json:"period"`
	Price  decimal.Decimal `json:"price"`
}

// decimal.Decimal keeps its state in unexported fields, which copier cannot reach.
var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{{
		SrcType: decimal.Decimal{},
		DstType: decimal.Decimal{},
		Fn: func(src any) (any, error) {
			d, ok := src.(decimal.Decimal)
			if !ok {
				return nil, copier.ErrInvalidCopyFrom
			}
			return d.Copy(), nil
		},
	}},
}

func (p *Point) Snapshot() (Snapshot, error) {
	opts := p.catalog.Options()
	src := Snapshot{
		ID:            p.id,
		Title:         p.title,
		Location:      p.location,
		Neighborhood:  p.neighborhood,
		City:          p.city,
		Images:        p.images,
		FootTraffic:   p.footTraffic.String(),
		Description:   p.description,
		Category:      p.category,
		Features:      p.features,
		RentalOptions: make([]RentalOptionSnapshot, 0, len(opts)),
	}
	for _, o := range opts {
		src.RentalOptions = append(src.RentalOptions, RentalOptionSnapshot{
			Period: o.Period().String(),
			Price:  o.Price(),
		})
	}

	var dst Snapshot
	if err := copier.CopyWithOption(&dst, &src, copyOptions); err != nil {
		return Snapshot{}, err
	}
	return dst, nil
}

// Clone returns an independent copy; nested slices are not shared.
func (s Snapshot) Clone() (Snapshot, error) {
	var dst Snapshot
	if err := copier.CopyWithOption(&dst, &s, copyOptions); err != nil {
		return Snapshot{}, err
	}
	return dst, nil
}

// Options rebuilds the plan options frozen in the snapshot, skipping unknown periods.
func (s Snapshot) Options() []plan.Option {
	out := make([]plan.Option, 0, len(s.RentalOptions))
	for _, r := range s.RentalOptions {
		o, err := plan.NewOption(plan.Period(r.Period), r.Price)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s Snapshot) IsZero() bool {
	return s.ID == uuid.Nil
}
