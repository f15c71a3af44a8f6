package point

import (
	"strings"
	"time"

	"pontomais/internal/domain/plan"

	"github.com/google/uuid"
)

// Details is the editable content of a listing.
type Details struct {
	Title        string
	Location     string
	Neighborhood string
	City         string
	Images       []string
	FootTraffic  FootTraffic
	Description  string
	Category     string
	Features     []string
	Options      []plan.Option
}

// ListingEdit carries the fields a partner may change on an approved listing.
// Empty Images leaves the gallery untouched.
type ListingEdit struct {
	Title       string
	Location    string
	City        string
	Description string
	Features    []string
	Images      []string
	Options     []plan.Option
}

type Point struct {
	id           uuid.UUID
	title        string
	location     string
	neighborhood string
	city         string
	images       []string
	footTraffic  FootTraffic
	description  string
	category     string
	features     []string
	catalog      plan.Catalog
	hidden       bool
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

func New(d Details) (*Point, error) {
	p := &Point{id: uuid.New()}
	if err := p.apply(d); err != nil {
		return nil, err
	}
	return p, nil
}

func Reconstruct(
	id uuid.UUID,
	d Details,
	hidden bool,
	version int64,
	createdAt, updatedAt time.Time,
) *Point {
	catalog, err := plan.NewCatalog(d.Options...)
	if err != nil {
		// corrupted row: keep the first option per period
		catalog = dedupe(d.Options)
	}
	return &Point{
		id:           id,
		title:        d.Title,
		location:     d.Location,
		neighborhood: d.Neighborhood,
		city:         d.City,
		images:       clone(d.Images),
		footTraffic:  d.FootTraffic,
		description:  d.Description,
		category:     d.Category,
		features:     clone(d.Features),
		catalog:      catalog,
		hidden:       hidden,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Point) Update(d Details) error {
	return p.apply(d)
}

// ApplyListingEdit propagates a partner's edit to the listing it owns.
func (p *Point) ApplyListingEdit(e ListingEdit) error {
	d := p.Details()
	d.Title = e.Title
	d.Location = e.Location
	d.City = e.City
	d.Description = e.Description
	d.Features = e.Features
	if len(e.Images) > 0 {
		d.Images = e.Images
	}
	d.Options = e.Options
	return p.apply(d)
}

func (p *Point) Hide()   { p.hidden = true }
func (p *Point) Unhide() { p.hidden = false }

func (p *Point) apply(d Details) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(d.City) == "" {
		return ErrEmptyCity
	}
	if !d.FootTraffic.IsValid() {
		return ErrInvalidFootTraffic
	}
	if len(d.Options) == 0 {
		return ErrNoRentalOptions
	}
	catalog, err := plan.NewCatalog(d.Options...)
	if err != nil {
		return err
	}

	p.title = strings.TrimSpace(d.Title)
	p.location = strings.TrimSpace(d.Location)
	p.neighborhood = strings.TrimSpace(d.Neighborhood)
	p.city = strings.TrimSpace(d.City)
	p.images = clone(d.Images)
	p.footTraffic = d.FootTraffic
	p.description = d.Description
	p.category = strings.TrimSpace(d.Category)
	p.features = clone(d.Features)
	p.catalog = catalog
	return nil
}

func (p *Point) ID() uuid.UUID            { return p.id }
func (p *Point) Title() string            { return p.title }
func (p *Point) Location() string         { return p.location }
func (p *Point) Neighborhood() string     { return p.neighborhood }
func (p *Point) City() string             { return p.city }
func (p *Point) Images() []string         { return clone(p.images) }
func (p *Point) FootTraffic() FootTraffic { return p.footTraffic }
func (p *Point) Description() string      { return p.description }
func (p *Point) Category() string         { return p.category }
func (p *Point) Features() []string       { return clone(p.features) }
func (p *Point) Catalog() plan.Catalog    { return p.catalog }
func (p *Point) IsHidden() bool           { return p.hidden }
func (p *Point) Version() int64           { return p.version }
func (p *Point) CreatedAt() time.Time     { return p.createdAt }
func (p *Point) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Point) Details() Details {
	return Details{
		Title:        p.title,
		Location:     p.location,
		Neighborhood: p.neighborhood,
		City:         p.city,
		Images:       clone(p.images),
		FootTraffic:  p.footTraffic,
		Description:  p.description,
		Category:     p.category,
		Features:     clone(p.features),
		Options:      p.catalog.Options(),
	}
}

func clone(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}

func dedupe(opts []plan.Option) plan.Catalog {
	seen := map[plan.Period]struct{}{}
	kept := make([]plan.Option, 0, len(opts))
	for _, o := range opts {
		if _, ok := seen[o.Period()]; ok || !o.Period().IsValid() {
			continue
		}
		seen[o.Period()] = struct{}{}
		kept = append(kept, o)
	}
	c, _ := plan.NewCatalog(kept...)
	return c
}
