package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ResultBase carries the attributes shared by every indicator result.
// Index is copied from the validated quote the result was computed from.
type ResultBase struct {
	Date  time.Time `json:"date"`
	Index int       `json:"index"`
}

func (r ResultBase) GetDate() time.Time { return r.Date }

func (r ResultBase) GetIndex() int { return r.Index }

// AdlResult is one period of the accumulation/distribution line.
type AdlResult struct {
	ResultBase

	MoneyFlowMultiplier decimal.Decimal `json:"moneyFlowMultiplier"`
	MoneyFlowVolume     decimal.Decimal `json:"moneyFlowVolume"`
	Adl                 decimal.Decimal `json:"adl"`
}

// EmaResult is one period of an exponential moving average.
// Ema is invalid until the window is filled.
type EmaResult struct {
	ResultBase

	Ema decimal.NullDecimal `json:"ema"`
}

// ChaikinOscResult is one period of the Chaikin oscillator.
//
// Oscillator stays invalid (null) during the warm-up of the slow window,
// an invalid oscillator means "not computable yet", not zero.
type ChaikinOscResult struct {
	ResultBase

	MoneyFlowMultiplier decimal.Decimal     `json:"moneyFlowMultiplier"`
	MoneyFlowVolume     decimal.Decimal     `json:"moneyFlowVolume"`
	Adl                 decimal.Decimal     `json:"adl"`
	Oscillator          decimal.NullDecimal `json:"oscillator"`
}

func (r ChaikinOscResult) String() string {
	return fmt.Sprintf("ChaikinOsc #%d %s MFM=%s MFV=%s ADL=%s OSC=%s",
		r.Index,
		r.Date.Format(DateFormat),
		r.MoneyFlowMultiplier.StringFixed(4),
		r.MoneyFlowVolume.StringFixed(2),
		r.Adl.StringFixed(2),
		FormatNullDecimal(r.Oscillator, 2))
}

func (r ChaikinOscResult) CsvHeader() []string {
	return []string{"index", "date", "money_flow_multiplier", "money_flow_volume", "adl", "oscillator"}
}

func (r ChaikinOscResult) CsvRecords() [][]string {
	return [][]string{{
		fmt.Sprintf("%d", r.Index),
		r.Date.Format(DateFormat),
		r.MoneyFlowMultiplier.String(),
		r.MoneyFlowVolume.String(),
		r.Adl.String(),
		FormatNullDecimal(r.Oscillator, -1),
	}}
}

type ChaikinOscResultSlice []ChaikinOscResult

// Tail returns the last n results, or all of them when n <= 0.
func (s ChaikinOscResultSlice) Tail(n int) ChaikinOscResultSlice {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

func (s ChaikinOscResultSlice) CsvHeader() []string {
	return ChaikinOscResult{}.CsvHeader()
}

func (s ChaikinOscResultSlice) CsvRecords() [][]string {
	var records [][]string
	for _, r := range s {
		records = append(records, r.CsvRecords()...)
	}
	return records
}

// FormatNullDecimal prints an invalid value as an empty string.
// A negative places argument prints the value with its full precision.
func FormatNullDecimal(v decimal.NullDecimal, places int32) string {
	if !v.Valid {
		return ""
	}

	if places < 0 {
		return v.Decimal.String()
	}

	return v.Decimal.StringFixed(places)
}
