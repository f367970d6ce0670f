package calculate

import "math"

// BollingerSeries calculates Bollinger Bands aligned with closes.
// Warmup entries are NaN.
func BollingerSeries(closes []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	upper = make([]float64, len(closes))
	middle = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range upper {
		upper[i] = math.NaN()
		middle[i] = math.NaN()
		lower[i] = math.NaN()
	}
	if period <= 0 || len(closes) < period {
		return upper, middle, lower
	}

	sma := SMASeries(closes, period)
	for i := period - 1; i < len(closes); i++ {
		mid := sma[i]

		var variance float64
		for j := i - period + 1; j <= i; j++ {
			variance += math.Pow(closes[j]-mid, 2)
		}
		sd := math.Sqrt(variance / float64(period))

		middle[i] = mid
		upper[i] = mid + sd*stdDev
		lower[i] = mid - sd*stdDev
	}
	return upper, middle, lower
}
