package queries

import (
	"pontomais/internal/infra"
	"pontomais/internal/pkg/errs"
)

var (
	ErrPointNotFound   = errs.New("point not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking belongs to another account")
	ErrUserNotFound    = errs.New("user not found")
)

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
