package plan

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Option struct {
	period Period
	price  decimal.Decimal
}

func NewOption(period Period, price decimal.Decimal) (Option, error) {
	if !period.IsValid() {
		return Option{}, ErrInvalidPeriod
	}
	if !price.IsPositive() {
		return Option{}, ErrNonPositivePrice
	}
	return Option{period: period, price: price}, nil
}

func (o Option) Period() Period         { return o.period }
func (o Option) Price() decimal.Decimal { return o.price }
func (o Option) DurationDays() int      { return DurationDays(o.period) }

func (o Option) PerDayCost() decimal.Decimal {
	return o.price.Div(decimal.NewFromInt(int64(o.DurationDays())))
}

// MaxPerDayCost is zero for an empty list.
func MaxPerDayCost(opts []Option) decimal.Decimal {
	maxCost := decimal.Zero
	for _, o := range opts {
		if c := o.PerDayCost(); c.GreaterThan(maxCost) {
			maxCost = c
		}
	}
	return maxCost
}

// Savings reports the whole-percent discount of o against the priciest per-day option.
// ok is false when o is itself the priciest, or the comparison set is empty.
func Savings(o Option, opts []Option) (percent int, ok bool) {
	maxCost := MaxPerDayCost(opts)
	perDay := o.PerDayCost()
	if maxCost.IsZero() || !perDay.LessThan(maxCost) {
		return 0, false
	}
	pct := decimal.NewFromInt(1).Sub(perDay.Div(maxCost)).Mul(hundred).Round(0)
	return int(pct.IntPart()), true
}
