package patterns

import "math"

// DivergenceType classifies the detected swing structure.
type DivergenceType string

const (
	DivergenceBullish DivergenceType = "bullish"
	DivergenceBearish DivergenceType = "bearish"
	DivergenceNone    DivergenceType = "none"
)

// Divergence is the detector output. Strength is the absolute RSI gap
// between the two swing points, 0 when no divergence fired.
type Divergence struct {
	Type     DivergenceType
	Strength float64
}

// DetectRSIDivergence scans the trailing lookback window of the close and RSI
// series for a price/oscillator disagreement at swing extremes. Only one
// divergence is reported per call; the bullish structure is checked first.
// Series shorter than the lookback yield DivergenceNone, not an error.
func DetectRSIDivergence(closes, rsi []float64, lookback int) Divergence {
	if len(closes) < lookback || len(rsi) < lookback {
		return Divergence{Type: DivergenceNone}
	}

	recentCloses := closes[len(closes)-lookback:]
	recentRSI := rsi[len(rsi)-lookback:]

	// Находим самый низкий клоуз (low1) и предыдущий минимум перед ним (low2);
	// симметрично для максимумов.
	low1, low2 := 0, -1
	high1, high2 := 0, -1

	for i := 1; i < len(recentCloses); i++ {
		if recentCloses[i] < recentCloses[low1] {
			low2 = low1
			low1 = i
		}
		if recentCloses[i] > recentCloses[high1] {
			high2 = high1
			high1 = i
		}
	}

	// Bullish: price makes a lower low while RSI makes a higher low, with the
	// RSI still in depressed territory.
	if low2 >= 0 && low1 > low2 {
		priceLowerLow := recentCloses[low1] < recentCloses[low2]
		rsiHigherLow := recentRSI[low1] > recentRSI[low2]

		if priceLowerLow && rsiHigherLow && recentRSI[low1] < 40 {
			return Divergence{
				Type:     DivergenceBullish,
				Strength: math.Abs(recentRSI[low1] - recentRSI[low2]),
			}
		}
	}

	// Bearish: price makes a higher high while RSI makes a lower high.
	if high2 >= 0 && high1 > high2 {
		priceHigherHigh := recentCloses[high1] > recentCloses[high2]
		rsiLowerHigh := recentRSI[high1] < recentRSI[high2]

		if priceHigherHigh && rsiLowerHigh && recentRSI[high1] > 60 {
			return Divergence{
				Type:     DivergenceBearish,
				Strength: math.Abs(recentRSI[high2] - recentRSI[high1]),
			}
		}
	}

	return Divergence{Type: DivergenceNone}
}
