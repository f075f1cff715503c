package fixedpoint

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumber = errors.New("invalid decimal number")

var (
	Zero = decimal.Zero
	One  = decimal.NewFromInt(1)
	Two  = decimal.NewFromInt(2)
)

// NewFromString parses a decimal string, thousand separators and
// surrounding spaces are ignored.
func NewFromString(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(input, ",", ""))
	if s == "" {
		return Zero, errors.Wrap(ErrInvalidNumber, "empty string")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errors.Wrapf(ErrInvalidNumber, "given %q: %v", input, err)
	}

	return d, nil
}

func MustNewFromString(input string) decimal.Decimal {
	d, err := NewFromString(input)
	if err != nil {
		panic(err)
	}
	return d
}

func NewFromInt(val int64) decimal.Decimal {
	return decimal.NewFromInt(val)
}

func NewFromFloat(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val)
}
