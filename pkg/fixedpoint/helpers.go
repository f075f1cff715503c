package fixedpoint

import "github.com/shopspring/decimal"

func Sum(values []decimal.Decimal) (s decimal.Decimal) {
	s = Zero
	for _, value := range values {
		s = s.Add(value)
	}
	return s
}

// Avg returns zero for an empty slice.
func Avg(values []decimal.Decimal) (avg decimal.Decimal) {
	if len(values) == 0 {
		return Zero
	}

	s := Sum(values)
	avg = s.Div(decimal.NewFromInt(int64(len(values))))
	return avg
}
