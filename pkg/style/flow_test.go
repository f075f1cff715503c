package style

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignString(t *testing.T) {
	assert.Equal(t, "+1.50", SignString(decimal.RequireFromString("1.5"), 2))
	assert.Equal(t, "-1.50", SignString(decimal.RequireFromString("-1.5"), 2))
	assert.Equal(t, "0.00", SignString(decimal.Zero, 2))
}

func TestFlowColor(t *testing.T) {
	assert.Equal(t, AccumulationColor, FlowColor(decimal.NewFromInt(3)))
	assert.Equal(t, DistributionColor, FlowColor(decimal.NewFromInt(-3)))
	assert.Equal(t, NeutralColor, FlowColor(decimal.Zero))
}
