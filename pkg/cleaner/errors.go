package cleaner

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/stockind/pkg/types"
)

var (
	// ErrBadHistory is matched by every history validation failure.
	ErrBadHistory = errors.New("bad history")

	ErrNoHistory     = errors.New("no historical quotes")
	ErrNoBasicData   = errors.New("no historical basic data")
	ErrDuplicateDate = errors.New("duplicate date found")
)

// BadHistoryError describes why a history was refused.
// Date is set when the failure points at a single period.
type BadHistoryError struct {
	Reason error
	Date   time.Time
}

func (e *BadHistoryError) Error() string {
	if e.Date.IsZero() {
		return e.Reason.Error()
	}

	return fmt.Sprintf("%s: %s", e.Reason.Error(), e.Date.Format(types.DateFormat))
}

func (e *BadHistoryError) Unwrap() error { return e.Reason }

func (e *BadHistoryError) Is(target error) bool {
	return target == ErrBadHistory
}

// IsBadHistory reports whether err came from a history validation.
func IsBadHistory(err error) bool {
	return errors.Is(err, ErrBadHistory)
}

// IsEmptyHistory reports whether err was caused by an empty quote or basic data series.
func IsEmptyHistory(err error) bool {
	return errors.Is(err, ErrNoHistory) || errors.Is(err, ErrNoBasicData)
}
