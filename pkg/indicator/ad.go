package indicator

import (
	"github.com/shopspring/decimal"

	"github.com/c9s/stockind/pkg/fixedpoint"
	"github.com/c9s/stockind/pkg/types"
)

/*
Adl implements the accumulation/distribution line

Accumulation/Distribution Indicator (A/D)
- https://www.investopedia.com/terms/a/accumulationdistribution.asp

Money Flow Multiplier = ((Close - Low) - (High - Close)) / (High - Low)
Money Flow Volume = Money Flow Multiplier * Volume
ADL = previous ADL + Money Flow Volume

The quotes must come from cleaner.PrepareHistory.
*/
func Adl(quotes []types.Quote) []types.AdlResult {
	results := make([]types.AdlResult, len(quotes))

	adl := fixedpoint.Zero
	for i, q := range quotes {
		multiplier := moneyFlowMultiplier(q)
		volume := multiplier.Mul(q.Volume)
		adl = adl.Add(volume)

		results[i] = types.AdlResult{
			ResultBase: types.ResultBase{
				Date:  q.Date,
				Index: q.Index,
			},
			MoneyFlowMultiplier: multiplier,
			MoneyFlowVolume:     volume,
			Adl:                 adl,
		}
	}

	return results
}

// moneyFlowMultiplier is zero for a period without range.
// An inverted range (high < low) goes through the formula unchanged.
func moneyFlowMultiplier(q types.Quote) decimal.Decimal {
	hl := q.High.Sub(q.Low)
	if hl.IsZero() {
		return fixedpoint.Zero
	}

	cl := q.Close.Sub(q.Low)
	hc := q.High.Sub(q.Close)
	return cl.Sub(hc).Div(hl)
}
