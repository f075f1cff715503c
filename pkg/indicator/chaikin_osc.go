package indicator

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/stockind/pkg/cleaner"
	"github.com/c9s/stockind/pkg/fixedpoint"
	"github.com/c9s/stockind/pkg/types"
)

const (
	DefaultChaikinFastPeriods = 3
	DefaultChaikinSlowPeriods = 10
)

var logChaikin = logrus.WithField("indicator", "chaikinOsc")

// ValidateChaikinOscPeriods checks the smoothing windows of the oscillator.
func ValidateChaikinOscPeriods(fastPeriods, slowPeriods int) error {
	if err := validatePeriod("fast periods", fastPeriods); err != nil {
		return err
	}

	if err := validatePeriod("slow periods", slowPeriods); err != nil {
		return err
	}

	if fastPeriods >= slowPeriods {
		return errors.Wrapf(ErrInvalidPeriods, "fast periods (%d) must be less than slow periods (%d)", fastPeriods, slowPeriods)
	}

	return nil
}

// ChaikinOsc calculates the Chaikin oscillator of a prepared quote history.
//
// Refer: Chaikin Oscillator
// Refer URL: https://school.stockcharts.com/doku.php?id=technical_indicators:chaikin_oscillator
//
// The oscillator is the spread between the fast and the slow EMA of the
// accumulation/distribution line. It is only valid from the period whose
// index equals slowPeriods on.
//
// The quotes must come from cleaner.PrepareHistory, they are not checked again.
func ChaikinOsc(quotes []types.Quote, fastPeriods, slowPeriods int) ([]types.ChaikinOscResult, error) {
	if err := ValidateChaikinOscPeriods(fastPeriods, slowPeriods); err != nil {
		return nil, err
	}

	adlResults := Adl(quotes)

	adl := make([]types.BasicData, len(adlResults))
	for i, r := range adlResults {
		adl[i] = types.BasicData{Date: r.Date, Value: r.Adl, Index: r.Index}
	}

	fast, err := Ema(adl, fastPeriods)
	if err != nil {
		return nil, err
	}

	slow, err := Ema(adl, slowPeriods)
	if err != nil {
		return nil, err
	}

	results := make([]types.ChaikinOscResult, len(adlResults))
	for i, r := range adlResults {
		result := types.ChaikinOscResult{
			ResultBase:          r.ResultBase,
			MoneyFlowMultiplier: r.MoneyFlowMultiplier,
			MoneyFlowVolume:     r.MoneyFlowVolume,
			Adl:                 r.Adl,
		}

		if fast[i].Ema.Valid && slow[i].Ema.Valid {
			result.Oscillator = fixedpoint.Some(fast[i].Ema.Decimal.Sub(slow[i].Ema.Decimal))
		}

		results[i] = result
	}

	logChaikin.Debugf("calculated %d periods with fast=%d slow=%d", len(results), fastPeriods, slowPeriods)
	return results, nil
}

// ChaikinOscDefault uses the 3 and 10 period windows.
func ChaikinOscDefault(quotes []types.Quote) ([]types.ChaikinOscResult, error) {
	return ChaikinOsc(quotes, DefaultChaikinFastPeriods, DefaultChaikinSlowPeriods)
}

// CalculateChaikinOsc prepares a raw quote history and calculates the oscillator on it.
// The periods are checked before the history.
func CalculateChaikinOsc(quotes []types.Quote, fastPeriods, slowPeriods int) ([]types.ChaikinOscResult, error) {
	if err := ValidateChaikinOscPeriods(fastPeriods, slowPeriods); err != nil {
		return nil, err
	}

	prepared, err := cleaner.PrepareHistory(quotes)
	if err != nil {
		return nil, err
	}

	return ChaikinOsc(prepared, fastPeriods, slowPeriods)
}
