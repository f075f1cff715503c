package types

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateFormat is the layout used to print and parse quote dates.
const DateFormat = "2006-01-02"

// Dated is implemented by every record that can be placed on a time line.
type Dated interface {
	GetDate() time.Time
}

// Indexed is implemented by every record that receives a position
// from the history cleaner.
type Indexed interface {
	GetIndex() int
	SetIndex(index int)
}

// Quote is one traded period of a security.
//
// Index is 0 until the quote went through cleaner.PrepareHistory,
// validated quotes carry 1..N in date order.
type Quote struct {
	Date   time.Time       `json:"date" yaml:"date"`
	Open   decimal.Decimal `json:"open" yaml:"open"`
	High   decimal.Decimal `json:"high" yaml:"high"`
	Low    decimal.Decimal `json:"low" yaml:"low"`
	Close  decimal.Decimal `json:"close" yaml:"close"`
	Volume decimal.Decimal `json:"volume" yaml:"volume"`
	Index  int             `json:"index,omitempty" yaml:"index,omitempty"`
}

func (q *Quote) GetDate() time.Time { return q.Date }

func (q *Quote) GetIndex() int { return q.Index }

func (q *Quote) SetIndex(index int) { q.Index = index }

// Range returns high - low.
func (q Quote) Range() decimal.Decimal {
	return q.High.Sub(q.Low)
}

// InvertedRange reports a quote whose high is below its low.
// Such quotes are accepted by the cleaner; callers decide whether to trust them.
func (q Quote) InvertedRange() bool {
	return q.High.LessThan(q.Low)
}

// Part returns the quote field selected by the candle part.
func (q Quote) Part(part CandlePart) (decimal.Decimal, error) {
	switch part {
	case CandlePartOpen:
		return q.Open, nil
	case CandlePartHigh:
		return q.High, nil
	case CandlePartLow:
		return q.Low, nil
	case CandlePartClose:
		return q.Close, nil
	case CandlePartVolume:
		return q.Volume, nil
	}

	return decimal.Zero, errors.Wrapf(ErrInvalidCandlePart, "given %q", string(part))
}

func (q Quote) String() string {
	return fmt.Sprintf("Quote #%d %s O=%s H=%s L=%s C=%s V=%s",
		q.Index,
		q.Date.Format(DateFormat),
		q.Open.String(),
		q.High.String(),
		q.Low.String(),
		q.Close.String(),
		q.Volume.String())
}

func (q Quote) CsvHeader() []string {
	return []string{"index", "date", "open", "high", "low", "close", "volume"}
}

func (q Quote) CsvRecords() [][]string {
	return [][]string{{
		fmt.Sprintf("%d", q.Index),
		q.Date.Format(DateFormat),
		q.Open.String(),
		q.High.String(),
		q.Low.String(),
		q.Close.String(),
		q.Volume.String(),
	}}
}

// QuoteSlice is a history of quotes.
type QuoteSlice []Quote

func (s QuoteSlice) Len() int { return len(s) }

func (s QuoteSlice) First() (Quote, bool) {
	if len(s) == 0 {
		return Quote{}, false
	}
	return s[0], true
}

func (s QuoteSlice) Last() (Quote, bool) {
	if len(s) == 0 {
		return Quote{}, false
	}
	return s[len(s)-1], true
}

// FindByDate returns the quote traded on the given date.
func (s QuoteSlice) FindByDate(date time.Time) (Quote, bool) {
	for _, q := range s {
		if q.Date.Equal(date) {
			return q, true
		}
	}
	return Quote{}, false
}

func (s QuoteSlice) CsvHeader() []string {
	return Quote{}.CsvHeader()
}

func (s QuoteSlice) CsvRecords() [][]string {
	var records [][]string
	for _, q := range s {
		records = append(records, q.CsvRecords()...)
	}
	return records
}
