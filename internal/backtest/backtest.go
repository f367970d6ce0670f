package backtest

import (
	"math"

	"github.com/Alias1177/Scanner/internal/calculate"
	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

const (
	rsiPeriod       = 14
	oversoldLevel   = 30
	overboughtLevel = 70

	// Минимум исторических срабатываний для статистической значимости.
	minSampleSize = 3
)

// Run replays a pattern's trigger rule against the ticker's own close
// history and measures how the trade would have gone over the next horizon
// bars. Patterns that cannot be mechanically re-detected from closes alone
// (divergences, news and hype plays) return the static catalog rate with
// SampleSize 0. Fewer than minSampleSize historical triggers also fall back
// to the catalog rate, keeping the observed sample size.
func Run(closes []float64, patternName string, signal models.Signal, horizon int) models.BacktestResult {
	if horizon <= 0 {
		horizon = 5
	}

	var triggers []int
	switch patternName {
	case patterns.RSIOversold:
		rsi := rsiSeries(closes, rsiPeriod)
		for i := rsiPeriod; i < len(rsi)-horizon; i++ {
			if rsi[i] < oversoldLevel && rsi[i-1] >= oversoldLevel {
				triggers = append(triggers, i)
			}
		}
	case patterns.RSIOverbought:
		rsi := rsiSeries(closes, rsiPeriod)
		for i := rsiPeriod; i < len(rsi)-horizon; i++ {
			if rsi[i] > overboughtLevel && rsi[i-1] <= overboughtLevel {
				triggers = append(triggers, i)
			}
		}
	case patterns.GoldenCross:
		triggers = crossTriggers(
			calculate.SMASeries(closes, calculate.SMAFastPeriod),
			calculate.SMASeries(closes, calculate.SMASlowPeriod),
			horizon, true)
	case patterns.DeathCross:
		triggers = crossTriggers(
			calculate.SMASeries(closes, calculate.SMAFastPeriod),
			calculate.SMASeries(closes, calculate.SMASlowPeriod),
			horizon, false)
	case patterns.MACDBullishCross, patterns.MACDBearishCross:
		macd, sig := calculate.MACDSeries(closes,
			calculate.MACDFastPeriod, calculate.MACDSlowPeriod, calculate.MACDSignalSpan)
		triggers = crossTriggers(macd, sig, horizon, patternName == patterns.MACDBullishCross)
	case patterns.BollingerLower, patterns.BollingerUpper:
		upper, _, lower := calculate.BollingerSeries(closes,
			calculate.BollingerPeriod, calculate.BollingerStdDev)
		triggers = bandTriggers(closes, upper, lower, horizon, patternName == patterns.BollingerLower)
	default:
		// Divergence swing structures and sentiment plays are not re-detectable
		// from a close series, use the static catalog rate.
		return staticRate(patternName, 0)
	}

	if len(triggers) < minSampleSize {
		return staticRate(patternName, len(triggers))
	}

	var wins int
	var totalReturn float64
	for _, i := range triggers {
		entry := closes[i]
		exitIdx := i + horizon
		if exitIdx > len(closes)-1 {
			exitIdx = len(closes) - 1
		}
		pctReturn := (closes[exitIdx] - entry) / entry * 100

		if signal == models.SignalBuy && pctReturn > 0 {
			wins++
		}
		if signal == models.SignalSell && pctReturn < 0 {
			wins++
		}
		if signal == models.SignalBuy {
			totalReturn += pctReturn
		} else {
			totalReturn -= pctReturn
		}
	}

	n := float64(len(triggers))
	return models.BacktestResult{
		WinRate:    math.Round(float64(wins) / n * 100),
		AvgReturn:  math.Round(totalReturn/n*100) / 100,
		SampleSize: len(triggers),
	}
}

// crossTriggers finds every index where the fast series crossed the slow one
// since the previous bar. bullish selects upward crossings.
func crossTriggers(fast, slow []float64, horizon int, bullish bool) []int {
	var triggers []int
	for i := 1; i < len(fast)-horizon; i++ {
		if math.IsNaN(fast[i]) || math.IsNaN(slow[i]) || math.IsNaN(fast[i-1]) || math.IsNaN(slow[i-1]) {
			continue
		}
		if bullish && fast[i-1] < slow[i-1] && fast[i] > slow[i] {
			triggers = append(triggers, i)
		}
		if !bullish && fast[i-1] > slow[i-1] && fast[i] < slow[i] {
			triggers = append(triggers, i)
		}
	}
	return triggers
}

// bandTriggers finds every index where the close first touched a Bollinger
// band, having been inside the bands the previous bar.
func bandTriggers(closes, upper, lower []float64, horizon int, lowerBand bool) []int {
	var triggers []int
	for i := 1; i < len(closes)-horizon; i++ {
		if math.IsNaN(upper[i]) || math.IsNaN(lower[i]) || math.IsNaN(upper[i-1]) || math.IsNaN(lower[i-1]) {
			continue
		}
		if lowerBand && closes[i] <= lower[i] && closes[i-1] > lower[i-1] {
			triggers = append(triggers, i)
		}
		if !lowerBand && closes[i] >= upper[i] && closes[i-1] < upper[i-1] {
			triggers = append(triggers, i)
		}
	}
	return triggers
}

func staticRate(patternName string, sampleSize int) models.BacktestResult {
	if rec, ok := patterns.Lookup(patternName); ok {
		return models.BacktestResult{
			WinRate:    rec.SuccessRate,
			AvgReturn:  rec.AvgMove,
			SampleSize: sampleSize,
		}
	}
	return models.BacktestResult{WinRate: 50, AvgReturn: 0, SampleSize: sampleSize}
}
