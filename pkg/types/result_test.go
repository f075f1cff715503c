package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaikinOscResult_AbsentOscillator(t *testing.T) {
	r := ChaikinOscResult{
		ResultBase:          ResultBase{Date: time.Date(2017, 1, 3, 0, 0, 0, 0, time.UTC), Index: 1},
		MoneyFlowMultiplier: decimal.RequireFromString("0.5"),
		MoneyFlowVolume:     decimal.RequireFromString("500"),
		Adl:                 decimal.RequireFromString("500"),
	}

	assert.Equal(t, []string{"1", "2017-01-03", "0.5", "500", "500", ""}, r.CsvRecords()[0])

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"oscillator":null`)
	assert.Contains(t, string(out), `"index":1`)

	r.Oscillator = decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	assert.Equal(t, "0", r.CsvRecords()[0][5])
	assert.Equal(t, "ChaikinOsc #1 2017-01-03 MFM=0.5000 MFV=500.00 ADL=500.00 OSC=0.00", r.String())
}

func TestChaikinOscResultSlice_Tail(t *testing.T) {
	s := make(ChaikinOscResultSlice, 5)
	for i := range s {
		s[i].Index = i + 1
	}

	assert.Len(t, s.Tail(0), 5)
	assert.Len(t, s.Tail(10), 5)
	tail := s.Tail(2)
	assert.Len(t, tail, 2)
	assert.Equal(t, 4, tail[0].Index)
}
