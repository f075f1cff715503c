package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BasicData is a single observation of a one-field series,
// e.g. only the closing prices of a quote history.
type BasicData struct {
	Date  time.Time       `json:"date" yaml:"date"`
	Value decimal.Decimal `json:"value" yaml:"value"`
	Index int             `json:"index,omitempty" yaml:"index,omitempty"`
}

func (d *BasicData) GetDate() time.Time { return d.Date }

func (d *BasicData) GetIndex() int { return d.Index }

func (d *BasicData) SetIndex(index int) { d.Index = index }

func (d BasicData) String() string {
	return fmt.Sprintf("#%d %s %s", d.Index, d.Date.Format(DateFormat), d.Value.String())
}

func (d BasicData) CsvHeader() []string {
	return []string{"index", "date", "value"}
}

func (d BasicData) CsvRecords() [][]string {
	return [][]string{{
		fmt.Sprintf("%d", d.Index),
		d.Date.Format(DateFormat),
		d.Value.String(),
	}}
}

type BasicDataSlice []BasicData

// Values returns the values of the series in order.
func (s BasicDataSlice) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(s))
	for i, d := range s {
		values[i] = d.Value
	}
	return values
}

func (s BasicDataSlice) CsvHeader() []string {
	return BasicData{}.CsvHeader()
}

func (s BasicDataSlice) CsvRecords() [][]string {
	var records [][]string
	for _, d := range s {
		records = append(records, d.CsvRecords()...)
	}
	return records
}
