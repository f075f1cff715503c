package csvsource

import (
	"errors"
	"strings"
	"time"

	"github.com/c9s/stockind/pkg/fixedpoint"
	"github.com/c9s/stockind/pkg/types"
)

// DateFormats are the date layouts accepted by the default decoder, tried in order.
var DateFormats = []string{
	types.DateFormat,
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV date column can not be parsed with any of the DateFormats.
	ErrInvalidTimeFormat = errors.New("cannot parse date string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not have prices in the expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid decimal format")
)

// CSVQuoteDecoder is an extension point for CSVQuoteReader to support custom file formats.
type CSVQuoteDecoder func(record []string) (types.Quote, error)

// DefaultCSVQuoteDecoder decodes a date,open,high,low,close[,volume] record.
// A missing volume column decodes to zero volume.
func DefaultCSVQuoteDecoder(record []string) (types.Quote, error) {
	var q, empty types.Quote

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	date, err := ParseDate(record[0])
	if err != nil {
		return empty, err
	}
	q.Date = date

	if q.Open, err = fixedpoint.NewFromString(record[1]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if q.High, err = fixedpoint.NewFromString(record[2]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if q.Low, err = fixedpoint.NewFromString(record[3]); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if q.Close, err = fixedpoint.NewFromString(record[4]); err != nil {
		return empty, ErrInvalidPriceFormat
	}

	q.Volume = fixedpoint.Zero
	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		if q.Volume, err = fixedpoint.NewFromString(record[5]); err != nil {
			return empty, ErrInvalidVolumeFormat
		}
		if q.Volume.IsNegative() {
			return empty, ErrInvalidVolumeFormat
		}
	}

	return q, nil
}

// ParseDate parses a quote date with the first matching layout of DateFormats.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidTimeFormat
}

// isHeader reports a header row, detected by its date column.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(record[0])) {
	case "date", "time", "timestamp":
		return true
	}
	return false
}
