package style

import (
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

var (
	AccumulationColor = text.Colors{text.FgHiGreen}
	DistributionColor = text.Colors{text.FgHiRed}
	NeutralColor      = text.Colors{text.FgHiWhite}
)

// FlowColor picks the color of a money flow value,
// positive values are accumulation and negative values are distribution.
func FlowColor(v decimal.Decimal) text.Colors {
	switch v.Sign() {
	case 1:
		return AccumulationColor
	case -1:
		return DistributionColor
	}
	return NeutralColor
}

// SignString prints a positive value with a leading plus sign.
func SignString(v decimal.Decimal, places int32) string {
	s := v.StringFixed(places)
	if v.Sign() > 0 {
		return "+" + s
	}
	return s
}
