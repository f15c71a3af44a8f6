package converter

import (
	"time"

	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PointRow struct {
	ID            uuid.UUID
	Title         string
	Location      string
	Neighborhood  string
	City          string
	Images        []byte
	FootTraffic   string
	Description   string
	Category      string
	Features      []byte
	RentalOptions []byte
	IsHidden      bool
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type rentalOption struct {
	Period string          `json:"period"`
	Price  decimal.Decimal `json:"price"`
}

func PointToRow(p *point.Point) (PointRow, error) {
	images, err := marshalStrings(p.Images())
	if err != nil {
		return PointRow{}, err
	}
	features, err := marshalStrings(p.Features())
	if err != nil {
		return PointRow{}, err
	}
	options, err := EncodeOptions(p.Catalog().Options())
	if err != nil {
		return PointRow{}, err
	}

	return PointRow{
		ID:            p.ID(),
		Title:         p.Title(),
		Location:      p.Location(),
		Neighborhood:  p.Neighborhood(),
		City:          p.City(),
		Images:        images,
		FootTraffic:   p.FootTraffic().String(),
		Description:   p.Description(),
		Category:      p.Category(),
		Features:      features,
		RentalOptions: options,
		IsHidden:      p.IsHidden(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}, nil
}

func PointFromRow(r PointRow) (*point.Point, error) {
	images, err := unmarshalStrings(r.Images)
	if err != nil {
		return nil, err
	}
	features, err := unmarshalStrings(r.Features)
	if err != nil {
		return nil, err
	}
	options, err := DecodeOptions(r.RentalOptions)
	if err != nil {
		return nil, err
	}
	ft, err := point.NewFootTraffic(r.FootTraffic)
	if err != nil {
		return nil, err
	}

	d := point.Details{
		Title:        r.Title,
		Location:     r.Location,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		Images:       images,
		FootTraffic:  ft,
		Description:  r.Description,
		Category:     r.Category,
		Features:     features,
		Options:      options,
	}
	return point.Reconstruct(r.ID, d, r.IsHidden, r.Version, r.CreatedAt, r.UpdatedAt), nil
}

func EncodeOptions(opts []plan.Option) ([]byte, error) {
	rows := make([]rentalOption, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, rentalOption{Period: o.Period().String(), Price: o.Price()})
	}
	return json.Marshal(rows)
}

func DecodeOptions(b []byte) ([]plan.Option, error) {
	var rows []rentalOption
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	opts := make([]plan.Option, 0, len(rows))
	for _, r := range rows {
		period, err := plan.NewPeriod(r.Period)
		if err != nil {
			return nil, err
		}
		o, err := plan.NewOption(period, r.Price)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}
