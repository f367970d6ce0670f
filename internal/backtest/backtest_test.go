package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

// cyclicalCloses builds repeated decline/recovery swings so RSI crosses the
// oversold level once per cycle.
func cyclicalCloses(cycles int) []float64 {
	closes := []float64{100}
	price := 100.0
	for c := 0; c < cycles; c++ {
		for i := 0; i < 10; i++ {
			price -= 2
			closes = append(closes, price)
		}
		for i := 0; i < 10; i++ {
			price += 2
			closes = append(closes, price)
		}
	}
	return closes
}

func TestRunOversoldFindsHistoricalTriggers(t *testing.T) {
	closes := cyclicalCloses(4)

	bt := Run(closes, patterns.RSIOversold, models.SignalBuy, 5)

	require.GreaterOrEqual(t, bt.SampleSize, 3, "each decline should trigger one oversold crossing")
	assert.GreaterOrEqual(t, bt.WinRate, 0.0)
	assert.LessOrEqual(t, bt.WinRate, 100.0)
	assert.False(t, math.IsNaN(bt.AvgReturn))
}

func TestRunFallsBackOnFlatSeries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}

	bt := Run(closes, patterns.RSIOversold, models.SignalBuy, 5)

	assert.Equal(t, 0, bt.SampleSize)
	assert.Equal(t, 62.0, bt.WinRate, "flat history falls back to the catalog rate")
	assert.Equal(t, 8.0, bt.AvgReturn)
}

func TestRunDivergenceUsesStaticRate(t *testing.T) {
	closes := cyclicalCloses(4)

	bt := Run(closes, patterns.BullishDivergence, models.SignalBuy, 5)

	assert.Equal(t, 0, bt.SampleSize, "divergences are not re-detectable from closes")
	assert.Equal(t, 73.0, bt.WinRate)
	assert.Equal(t, 12.0, bt.AvgReturn)
}

func TestRunSentimentPatternsUseStaticRate(t *testing.T) {
	closes := cyclicalCloses(2)

	news := Run(closes, patterns.NewsSentimentPlay, models.SignalBuy, 5)
	assert.Equal(t, 55.0, news.WinRate)
	assert.Equal(t, 0, news.SampleSize)

	hype := Run(closes, patterns.SocialHype, models.SignalBuy, 5)
	assert.Equal(t, 45.0, hype.WinRate)
}

func TestRunUnknownPatternIsNeutral(t *testing.T) {
	closes := cyclicalCloses(2)

	bt := Run(closes, "Cup and Handle", models.SignalBuy, 5)

	assert.Equal(t, 50.0, bt.WinRate)
	assert.Equal(t, 0.0, bt.AvgReturn)
	assert.Equal(t, 0, bt.SampleSize)
}

func TestRunGoldenCrossTriggers(t *testing.T) {
	// Long sine-like swings produce repeated 20/50 SMA crossings.
	closes := make([]float64, 400)
	for i := range closes {
		closes[i] = 100 + 20*math.Sin(float64(i)/25)
	}

	bt := Run(closes, patterns.GoldenCross, models.SignalBuy, 5)

	require.GreaterOrEqual(t, bt.SampleSize, 2)
	assert.LessOrEqual(t, bt.WinRate, 100.0)
}

func TestRunShortHistoryNeverPanics(t *testing.T) {
	for _, name := range []string{
		patterns.RSIOversold, patterns.GoldenCross,
		patterns.MACDBullishCross, patterns.BollingerLower,
	} {
		bt := Run([]float64{100, 101}, name, models.SignalBuy, 5)
		assert.LessOrEqual(t, bt.SampleSize, 2, name)
	}
}
