package partner

import (
	"errors"

	"pontomais/internal/domain/plan"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingField           = errors.New("required field is missing")
	ErrPriceBelowMinimum      = errors.New("price below the plan minimum")
	ErrRequestAlreadyResolved = errors.New("request already resolved")
	ErrInvalidStatus          = errors.New("invalid request status")
)

const (
	DefaultNeighborhood = "Centro"
	DefaultCategory     = "Comércio"
	DefaultImage        = "https://images.unsplash.com/photo-1497366216548-37526070297c?q=80&w=1200&auto=format&fit=crop"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var minimums = map[plan.Period]decimal.Decimal{
	plan.PeriodQuinzenal:  decimal.NewFromInt(800),
	plan.PeriodMensal:     decimal.NewFromInt(1400),
	plan.PeriodTrimestral: decimal.NewFromInt(3800),
}

func Minimum(p plan.Period) decimal.Decimal {
	return minimums[p]
}

type Prices struct {
	Quinzenal  decimal.Decimal
	Mensal     decimal.Decimal
	Trimestral decimal.Decimal
}

func (p Prices) byPeriod() map[plan.Period]decimal.Decimal {
	return map[plan.Period]decimal.Decimal{
		plan.PeriodQuinzenal:  p.Quinzenal,
		plan.PeriodMensal:     p.Mensal,
		plan.PeriodTrimestral: p.Trimestral,
	}
}

func (p Prices) Validate() error {
	prices := p.byPeriod()
	for _, period := range plan.Periods() {
		if prices[period].LessThan(minimums[period]) {
			return ErrPriceBelowMinimum
		}
	}
	return nil
}

// Options lists one rental option per period, shortest first.
func (p Prices) Options() ([]plan.Option, error) {
	prices := p.byPeriod()
	out := make([]plan.Option, 0, len(prices))
	for _, period := range plan.Periods() {
		o, err := plan.NewOption(period, prices[period])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
