package indicator

import (
	"github.com/pkg/errors"
)

// ErrInvalidPeriods is returned when a smoothing window configuration can not produce a value.
var ErrInvalidPeriods = errors.New("invalid lookback periods")

func validatePeriod(name string, period int) error {
	if period <= 0 {
		return errors.Wrapf(ErrInvalidPeriods, "%s must be greater than 0, given %d", name, period)
	}
	return nil
}
