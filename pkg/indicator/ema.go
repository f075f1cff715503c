package indicator

import (
	"github.com/shopspring/decimal"

	"github.com/c9s/stockind/pkg/fixedpoint"
	"github.com/c9s/stockind/pkg/types"
)

// Ema calculates the exponential moving average of a prepared basic data series.
//
// The first value is the simple average of the first period values,
// then ema = previous ema + k * (value - previous ema) with k = 2 / (period + 1).
// Results before the window is filled carry an invalid Ema.
func Ema(series []types.BasicData, period int) ([]types.EmaResult, error) {
	if err := validatePeriod("period", period); err != nil {
		return nil, err
	}

	values := types.BasicDataSlice(series).Values()
	smoothed := ema(values, period)

	results := make([]types.EmaResult, len(series))
	for i, d := range series {
		results[i] = types.EmaResult{
			ResultBase: types.ResultBase{
				Date:  d.Date,
				Index: d.Index,
			},
			Ema: smoothed[i],
		}
	}

	return results, nil
}

func smoothingFactor(period int) decimal.Decimal {
	return fixedpoint.Two.Div(decimal.NewFromInt(int64(period + 1)))
}

// ema returns one value per input, invalid until period values were seen.
func ema(values []decimal.Decimal, period int) []decimal.NullDecimal {
	out := make([]decimal.NullDecimal, len(values))
	if len(values) < period {
		return out
	}

	k := smoothingFactor(period)

	// The first EMA is actually SMA
	last := fixedpoint.Avg(values[:period])
	out[period-1] = fixedpoint.Some(last)

	for i := period; i < len(values); i++ {
		last = last.Add(k.Mul(values[i].Sub(last)))
		out[i] = fixedpoint.Some(last)
	}

	return out
}
