package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	d := decimal.NewFromFloat
	cases := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		want     float64
	}{
		{"flat at zero", d(0), d(0), 0},
		{"from nothing", d(50), d(0), 100},
		{"growth", d(150), d(100), 50},
		{"decline", d(50), d(100), -50},
		{"rounds to two places", d(1), d(3), -66.67},
		{"drop to zero", d(0), d(40), -100},
		{"fractional money", d(80.5), d(70), 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PercentChange(tc.current, tc.previous))
		})
	}
}

func TestMetricValueInt(t *testing.T) {
	mv := metricValueInt(3, 2)
	assert.True(t, mv.Value.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 50.0, mv.Change)
}
