package types

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuote() Quote {
	return Quote{
		Date:   time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC),
		Open:   decimal.RequireFromString("244.92"),
		High:   decimal.RequireFromString("245.54"),
		Low:    decimal.RequireFromString("242.87"),
		Close:  decimal.RequireFromString("245.28"),
		Volume: decimal.RequireFromString("147031456"),
		Index:  502,
	}
}

func TestParseCandlePart(t *testing.T) {
	tests := []struct {
		give string
		want CandlePart
		err  bool
	}{
		{give: "O", want: CandlePartOpen},
		{give: "high", want: CandlePartHigh},
		{give: " l ", want: CandlePartLow},
		{give: "Close", want: CandlePartClose},
		{give: "v", want: CandlePartVolume},
		{give: "x", err: true},
		{give: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			part, err := ParseCandlePart(tt.give)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidCandlePart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, part)
			assert.True(t, part.Valid())
		})
	}
}

func TestCandlePart_UnmarshalJSON(t *testing.T) {
	var s struct {
		Part CandlePart `json:"part"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"part":"close"}`), &s))
	assert.Equal(t, CandlePartClose, s.Part)
	assert.Error(t, json.Unmarshal([]byte(`{"part":"mid"}`), &s))
}

func TestQuote_Part(t *testing.T) {
	q := testQuote()

	for part, want := range map[CandlePart]string{
		CandlePartOpen:   "244.92",
		CandlePartHigh:   "245.54",
		CandlePartLow:    "242.87",
		CandlePartClose:  "245.28",
		CandlePartVolume: "147031456",
	} {
		v, err := q.Part(part)
		require.NoError(t, err)
		assert.Equal(t, want, v.String())
	}

	_, err := q.Part(CandlePart("close"))
	assert.ErrorIs(t, err, ErrInvalidCandlePart)
}

func TestQuote_Range(t *testing.T) {
	q := testQuote()
	assert.Equal(t, "2.67", q.Range().String())
	assert.False(t, q.InvertedRange())

	q.High, q.Low = q.Low, q.High
	assert.True(t, q.InvertedRange())
}

func TestQuote_String(t *testing.T) {
	assert.Equal(t, "Quote #502 2018-12-31 O=244.92 H=245.54 L=242.87 C=245.28 V=147031456", testQuote().String())
}

func TestQuoteSlice(t *testing.T) {
	var empty QuoteSlice
	_, ok := empty.Last()
	assert.False(t, ok)

	s := QuoteSlice{testQuote()}
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 502, last.Index)

	_, ok = s.FindByDate(time.Date(2018, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, WriteCsv(&buf, s))
	assert.Equal(t, "index,date,open,high,low,close,volume\n502,2018-12-31,244.92,245.54,242.87,245.28,147031456\n", buf.String())
}
