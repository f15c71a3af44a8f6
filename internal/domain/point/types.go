package point

import "errors"

var (
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyCity          = errors.New("city is required")
	ErrInvalidFootTraffic = errors.New("invalid foot traffic level")
	ErrNoRentalOptions    = errors.New("at least one rental option is required")
	ErrPointHidden        = errors.New("point is not available")
)

type FootTraffic string

const (
	FootTrafficLow    FootTraffic = "Baixo"
	FootTrafficMedium FootTraffic = "Médio"
	FootTrafficHigh   FootTraffic = "Alto"
)

func (f FootTraffic) String() string {
	return string(f)
}

func (f FootTraffic) IsValid() bool {
	switch f {
	case FootTrafficLow, FootTrafficMedium, FootTrafficHigh:
		return true
	default:
		return false
	}
}

func NewFootTraffic(s string) (FootTraffic, error) {
	f := FootTraffic(s)
	if !f.IsValid() {
		return "", ErrInvalidFootTraffic
	}
	return f, nil
}
