package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns the signed change of current against previous in
// percent, rounded to two places. A zero previous value yields 100 when
// current grew and 0 otherwise.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	f, _ := current.Sub(previous).Div(previous).Mul(hundred).Round(2).Float64()
	return f
}

func metricValue(current, previous decimal.Decimal) entity.MetricValue {
	return entity.MetricValue{
		Value:  current,
		Change: PercentChange(current, previous),
	}
}

func metricValueInt(current, previous int) entity.MetricValue {
	return metricValue(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
