package plan

import "errors"

var (
	ErrInvalidPeriod    = errors.New("invalid rental period")
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrDuplicatePeriod  = errors.New("rental period already offered")
	ErrPeriodNotOffered = errors.New("rental period not offered for this point")
)

type Period string

const (
	PeriodQuinzenal  Period = "Quinzenal"
	PeriodMensal     Period = "Mensal"
	PeriodTrimestral Period = "Trimestral"
)

var durations = map[Period]int{
	PeriodQuinzenal:  15,
	PeriodMensal:     30,
	PeriodTrimestral: 90,
}

func (p Period) String() string {
	return string(p)
}

func (p Period) IsValid() bool {
	_, ok := durations[p]
	return ok
}

func NewPeriod(s string) (Period, error) {
	p := Period(s)
	if !p.IsValid() {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// DurationDays is 0 for an unknown period.
func DurationDays(p Period) int {
	return durations[p]
}

// Periods lists the offered periods shortest first.
func Periods() []Period {
	return []Period{PeriodQuinzenal, PeriodMensal, PeriodTrimestral}
}
