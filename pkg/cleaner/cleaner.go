// Package cleaner validates raw histories before any indicator runs on them.
//
// A prepared history is a fresh copy of the input, sorted ascending by date,
// free of duplicate dates, and indexed 1..N in that order.
package cleaner

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/c9s/stockind/pkg/types"
)

var log = logrus.WithField("component", "cleaner")

// dated is the capability set a record needs to be prepared.
type dated[T any] interface {
	*T
	types.Dated
	types.Indexed
}

// prepare copies, sorts, checks and indexes a history.
func prepare[T any, P dated[T]](history []T, emptyErr error) ([]T, error) {
	if len(history) == 0 {
		return nil, &BadHistoryError{Reason: emptyErr}
	}

	sorted := make([]T, len(history))
	copy(sorted, history)

	sort.SliceStable(sorted, func(i, j int) bool {
		return P(&sorted[i]).GetDate().Before(P(&sorted[j]).GetDate())
	})

	for i := 1; i < len(sorted); i++ {
		date := P(&sorted[i]).GetDate()
		if date.Equal(P(&sorted[i-1]).GetDate()) {
			return nil, &BadHistoryError{Reason: ErrDuplicateDate, Date: date}
		}
	}

	for i := range sorted {
		P(&sorted[i]).SetIndex(i + 1)
	}

	return sorted, nil
}

// PrepareHistory validates a quote history and returns a sorted, indexed copy.
// The given slice is left untouched.
func PrepareHistory(quotes []types.Quote) ([]types.Quote, error) {
	prepared, err := prepare[types.Quote](quotes, ErrNoHistory)
	if err != nil {
		return nil, err
	}

	log.Debugf("prepared %d quotes", len(prepared))
	return prepared, nil
}

// PrepareBasicData validates a single-value series the same way PrepareHistory does.
// Index values carried by the input are ignored and recomputed.
func PrepareBasicData(series []types.BasicData) ([]types.BasicData, error) {
	prepared, err := prepare[types.BasicData](series, ErrNoBasicData)
	if err != nil {
		return nil, err
	}

	log.Debugf("prepared %d basic data points", len(prepared))
	return prepared, nil
}

// ConvertHistoryToBasic validates the quotes and projects one of their fields
// into a basic data series carrying the same dates and indexes.
func ConvertHistoryToBasic(quotes []types.Quote, part types.CandlePart) ([]types.BasicData, error) {
	part, err := types.ParseCandlePart(string(part))
	if err != nil {
		return nil, err
	}

	prepared, err := PrepareHistory(quotes)
	if err != nil {
		return nil, err
	}

	series := make([]types.BasicData, len(prepared))
	for i, q := range prepared {
		value, err := q.Part(part)
		if err != nil {
			return nil, err
		}

		series[i] = types.BasicData{
			Date:  q.Date,
			Value: value,
			Index: q.Index,
		}
	}

	return series, nil
}
