package calculate

import (
	"math"

	"github.com/Alias1177/Scanner/models"
)

// Default indicator parameters used by the scanner. The RSI period is
// configurable; the rest match the standard dashboard settings.
const (
	SMAFastPeriod   = 20
	SMASlowPeriod   = 50
	SMATrendPeriod  = 200
	MACDFastPeriod  = 12
	MACDSlowPeriod  = 26
	MACDSignalSpan  = 9
	BollingerPeriod = 20
	BollingerStdDev = 2.0
	VolumeWindow    = 20
	KeyLevelWindow  = 20
)

// Closes extracts the close series from candles.
func Closes(candles []models.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// Snapshot computes the full indicator state for one ticker at the last bar.
// Indicators that lack enough history are flagged undefined rather than
// reported as zero; RSI degrades to a neutral 50.
func Snapshot(candles []models.Candle, rsiPeriod int) *models.IndicatorSnapshot {
	snap := &models.IndicatorSnapshot{RSI: 50}
	if len(candles) == 0 {
		return snap
	}

	closes := Closes(candles)
	n := len(closes)

	rsi := RSISeries(closes, rsiPeriod)
	snap.RSISeries = rsi
	snap.RSI = rsi[n-1]

	smaFast := SMASeries(closes, SMAFastPeriod)
	smaSlow := SMASeries(closes, SMASlowPeriod)
	if n >= 2 && defined(smaFast[n-1], smaSlow[n-1], smaFast[n-2], smaSlow[n-2]) {
		snap.HasTrend = true
		snap.SMAFast = smaFast[n-1]
		snap.SMASlow = smaSlow[n-1]
		snap.PrevSMAFast = smaFast[n-2]
		snap.PrevSMASlow = smaSlow[n-2]
	}

	sma200 := SMASeries(closes, SMATrendPeriod)
	if defined(sma200[n-1]) {
		snap.HasSMA200 = true
		snap.SMA200 = sma200[n-1]
	}

	macd, signal := MACDSeries(closes, MACDFastPeriod, MACDSlowPeriod, MACDSignalSpan)
	if n >= 2 && defined(macd[n-1], signal[n-1], macd[n-2], signal[n-2]) {
		snap.HasMACD = true
		snap.MACD = macd[n-1]
		snap.MACDSignal = signal[n-1]
		snap.PrevMACD = macd[n-2]
		snap.PrevMACDSignal = signal[n-2]
	}

	upper, middle, lower := BollingerSeries(closes, BollingerPeriod, BollingerStdDev)
	if defined(upper[n-1], middle[n-1], lower[n-1]) {
		snap.HasBands = true
		snap.BBUpper = upper[n-1]
		snap.BBMiddle = middle[n-1]
		snap.BBLower = lower[n-1]
	}

	window := KeyLevelWindow
	if n < window {
		window = n
	}
	snap.High20 = closes[n-window]
	snap.Low20 = closes[n-window]
	for _, c := range closes[n-window:] {
		if c > snap.High20 {
			snap.High20 = c
		}
		if c < snap.Low20 {
			snap.Low20 = c
		}
	}

	snap.CurrentVolume = float64(candles[n-1].Volume)
	if n > VolumeWindow {
		var sum float64
		for _, c := range candles[n-VolumeWindow:] {
			sum += float64(c.Volume)
		}
		snap.AvgVolume = sum / float64(VolumeWindow)
	}

	return snap
}

func defined(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
