package calculate

import "math"

// SMASeries returns the simple moving average aligned with closes.
// Entries before the warmup window are NaN.
func SMASeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(closes) < period {
		return out
	}

	var sum float64
	for i := 0; i < period; i++ {
		sum += closes[i]
	}
	out[period-1] = sum / float64(period)

	for i := period; i < len(closes); i++ {
		sum += closes[i] - closes[i-period]
		out[i] = sum / float64(period)
	}
	return out
}
