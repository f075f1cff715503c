package fixedpoint

import "github.com/shopspring/decimal"

// Null is the absent value.
var Null = decimal.NullDecimal{}

// Some wraps a present value.
func Some(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
