package scan

import (
	"math"

	"github.com/Alias1177/Scanner/models"
)

const (
	riskWindow  = 10
	minRiskPct  = 0.02
	maxRiskPct  = 0.10
	rewardRatio = 2.0
)

// RiskPlan derives stop-loss and take-profit from the asset's realized
// volatility: the 10-bar close range over current price, clamped to
// [2%, 10%]. Every plan keeps a 1:2 risk/reward ratio, which is a structural
// invariant of the scanner, not a suggestion.
func RiskPlan(price float64, closes []float64, signal models.Signal) (stopLoss, takeProfit float64) {
	risk := realizedVolatility(closes, price)
	if risk < minRiskPct {
		risk = minRiskPct
	}
	if risk > maxRiskPct {
		risk = maxRiskPct
	}

	if signal == models.SignalBuy {
		stopLoss = price * (1 - risk)
		takeProfit = price * (1 + risk*rewardRatio)
	} else {
		stopLoss = price * (1 + risk)
		takeProfit = price * (1 - risk*rewardRatio)
	}
	return round2(stopLoss), round2(takeProfit)
}

func realizedVolatility(closes []float64, price float64) float64 {
	if len(closes) == 0 || price <= 0 {
		return minRiskPct
	}
	start := len(closes) - riskWindow
	if start < 0 {
		start = 0
	}
	high, low := closes[start], closes[start]
	for _, c := range closes[start:] {
		if c > high {
			high = c
		}
		if c < low {
			low = c
		}
	}
	vol := (high - low) / price
	if math.IsNaN(vol) || math.IsInf(vol, 0) {
		return minRiskPct
	}
	return vol
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
