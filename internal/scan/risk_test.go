package scan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alias1177/Scanner/models"
)

func TestRiskPlanBuyOrdering(t *testing.T) {
	closes := []float64{100, 102, 98, 101, 99, 103, 100, 102, 101, 100}

	stop, target := RiskPlan(100, closes, models.SignalBuy)

	assert.Less(t, stop, 100.0)
	assert.Greater(t, target, 100.0)
}

func TestRiskPlanSellOrdering(t *testing.T) {
	closes := []float64{100, 102, 98, 101, 99, 103, 100, 102, 101, 100}

	stop, target := RiskPlan(100, closes, models.SignalSell)

	assert.Greater(t, stop, 100.0)
	assert.Less(t, target, 100.0)
}

func TestRiskPlanRewardRatio(t *testing.T) {
	closes := []float64{100, 102, 98, 101, 99, 103, 100, 102, 101, 100}
	price := 100.0

	stop, target := RiskPlan(price, closes, models.SignalBuy)

	risk := price - stop
	reward := target - price
	assert.InDelta(t, 2.0, reward/risk, 0.02, "reward must be twice the risk")
}

func TestRiskPlanFlatSeriesUsesFloor(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}

	stop, target := RiskPlan(100, closes, models.SignalBuy)

	// Zero realized volatility clamps to the 2% floor.
	assert.Equal(t, 98.0, stop)
	assert.Equal(t, 104.0, target)
}

func TestRiskPlanVolatileSeriesUsesCeiling(t *testing.T) {
	// 50% swing in the window is clamped to the 10% ceiling.
	closes := []float64{100, 60, 110, 70, 100, 90, 100, 95, 100, 100}

	stop, target := RiskPlan(100, closes, models.SignalBuy)

	assert.Equal(t, 90.0, stop)
	assert.Equal(t, 120.0, target)
}

func TestRiskPlanEmptyHistory(t *testing.T) {
	stop, target := RiskPlan(100, nil, models.SignalBuy)

	assert.False(t, math.IsNaN(stop))
	assert.False(t, math.IsNaN(target))
	assert.Equal(t, 98.0, stop)
	assert.Equal(t, 104.0, target)
}
