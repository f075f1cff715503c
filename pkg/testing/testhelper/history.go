package testhelper

import (
	"bytes"
	_ "embed"
	"time"

	"github.com/shopspring/decimal"

	"github.com/c9s/stockind/pkg/datasource/csvsource"
	"github.com/c9s/stockind/pkg/fixedpoint"
	"github.com/c9s/stockind/pkg/types"
)

// 502 daily quotes from 2017-01-03 to 2018-12-31
//
//go:embed testdata/quotes.csv
var historyCSV []byte

// HistoryLastDate is the date of the last quote of History.
var HistoryLastDate = time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC)

// History returns a fresh, unprepared copy of the fixture history.
func History() []types.Quote {
	quotes, err := csvsource.ReadQuotes(bytes.NewReader(historyCSV))
	if err != nil {
		panic(err)
	}
	return quotes
}

// HistoryCSV returns the raw csv content of the fixture history.
func HistoryCSV() []byte {
	return append([]byte{}, historyCSV...)
}

// Date parses a 2006-01-02 date.
func Date(s string) time.Time {
	t, err := time.Parse(types.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Number builds a decimal from a string, float or integer literal.
func Number(a interface{}) decimal.Decimal {
	switch v := a.(type) {
	case string:
		return fixedpoint.MustNewFromString(v)
	case int:
		return fixedpoint.NewFromInt(int64(v))
	case int64:
		return fixedpoint.NewFromInt(v)
	case float64:
		return fixedpoint.NewFromFloat(v)
	}

	panic("unsupported number type")
}

// Quote builds a quote from literal prices.
func Quote(date string, open, high, low, cls, volume interface{}) types.Quote {
	return types.Quote{
		Date:   Date(date),
		Open:   Number(open),
		High:   Number(high),
		Low:    Number(low),
		Close:  Number(cls),
		Volume: Number(volume),
	}
}
