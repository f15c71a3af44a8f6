package plan

import "github.com/shopspring/decimal"

// Catalog is a point's ordered list of rental options, one per period.
type Catalog struct {
	options []Option
}

func NewCatalog(opts ...Option) (Catalog, error) {
	seen := make(map[Period]struct{}, len(opts))
	for _, o := range opts {
		if !o.period.IsValid() {
			return Catalog{}, ErrInvalidPeriod
		}
		if _, dup := seen[o.period]; dup {
			return Catalog{}, ErrDuplicatePeriod
		}
		seen[o.period] = struct{}{}
	}
	return Catalog{options: append([]Option(nil), opts...)}, nil
}

func (c Catalog) Options() []Option {
	return append([]Option(nil), c.options...)
}

func (c Catalog) Len() int { return len(c.options) }

func (c Catalog) Find(p Period) (Option, bool) {
	for _, o := range c.options {
		if o.period == p {
			return o, true
		}
	}
	return Option{}, false
}

type Quote struct {
	Option         Option
	PerDay         decimal.Decimal
	SavingsPercent int
	HasBadge       bool
}

func (c Catalog) Quotes() []Quote {
	out := make([]Quote, 0, len(c.options))
	for _, o := range c.options {
		pct, ok := Savings(o, c.options)
		out = append(out, Quote{
			Option:         o,
			PerDay:         o.PerDayCost(),
			SavingsPercent: pct,
			HasBadge:       ok,
		})
	}
	return out
}
