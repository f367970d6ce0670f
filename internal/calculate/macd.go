package calculate

import "math"

// MACDSeries returns the MACD line (fast EMA minus slow EMA) and its signal
// line (EMA of the MACD line), both aligned with closes. Warmup entries are
// NaN; the signal line becomes defined signalPeriod bars after the MACD line.
func MACDSeries(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal []float64) {
	macd = make([]float64, len(closes))
	signal = make([]float64, len(closes))
	for i := range macd {
		macd[i] = math.NaN()
		signal[i] = math.NaN()
	}
	if len(closes) < slowPeriod+signalPeriod {
		return macd, signal
	}

	fastEMA := EMASeries(closes, fastPeriod)
	slowEMA := EMASeries(closes, slowPeriod)

	vals := make([]float64, 0, len(closes)-slowPeriod+1)
	for i := slowPeriod - 1; i < len(closes); i++ {
		macd[i] = fastEMA[i] - slowEMA[i]
		vals = append(vals, macd[i])
	}

	sig := EMASeries(vals, signalPeriod)
	for j, v := range sig {
		signal[slowPeriod-1+j] = v
	}
	return macd, signal
}
