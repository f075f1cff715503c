package fixedpoint

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumAndAvg(t *testing.T) {
	values := []decimal.Decimal{
		MustNewFromString("0.1"),
		MustNewFromString("0.2"),
		MustNewFromString("0.3"),
	}

	assert.Equal(t, "0.6", Sum(values).String())
	assert.Equal(t, "0.2", Avg(values).String())
	assert.True(t, Avg(nil).IsZero())
}

func TestSome(t *testing.T) {
	v := Some(Two)
	assert.True(t, v.Valid)
	assert.True(t, v.Decimal.Equal(Two))
	assert.False(t, Null.Valid)
}
