package calculate

import (
	"math"
	"testing"
	"time"

	"github.com/Alias1177/Scanner/models"
)

func risingCloses(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func fallingCloses(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start - float64(i)*step
	}
	return out
}

func TestRSISeriesWarmupIsNeutral(t *testing.T) {
	closes := risingCloses(30, 100, 1)
	rsi := RSISeries(closes, 14)

	if len(rsi) != len(closes) {
		t.Fatalf("len(rsi) = %d, want %d", len(rsi), len(closes))
	}
	for i := 0; i < 14; i++ {
		if rsi[i] != 50 {
			t.Errorf("rsi[%d] = %v, want neutral 50 during warmup", i, rsi[i])
		}
	}
}

func TestRSISeriesExtremes(t *testing.T) {
	up := RSISeries(risingCloses(40, 100, 1), 14)
	if got := up[len(up)-1]; got < 70 {
		t.Errorf("steadily rising series RSI = %v, want > 70", got)
	}
	// No losses at all pins RSI at 100.
	if got := up[len(up)-1]; got != 100 {
		t.Errorf("lossless series RSI = %v, want 100", got)
	}

	down := RSISeries(fallingCloses(40, 100, 1), 14)
	if got := down[len(down)-1]; got > 30 {
		t.Errorf("steadily falling series RSI = %v, want < 30", got)
	}
}

func TestSMASeries(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}
	sma := SMASeries(closes, 3)

	if !math.IsNaN(sma[0]) || !math.IsNaN(sma[1]) {
		t.Error("values before the first full window should be NaN")
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		if sma[i+2] != w {
			t.Errorf("sma[%d] = %v, want %v", i+2, sma[i+2], w)
		}
	}
}

func TestEMASeriesSeededWithSMA(t *testing.T) {
	closes := []float64{2, 4, 6, 8, 10}
	ema := EMASeries(closes, 3)

	if !math.IsNaN(ema[1]) {
		t.Error("values before the seed should be NaN")
	}
	if ema[2] != 4 {
		t.Errorf("ema[2] = %v, want SMA seed 4", ema[2])
	}
}

func TestBollingerSeriesOrdering(t *testing.T) {
	closes := risingCloses(30, 100, 0.5)
	upper, middle, lower := BollingerSeries(closes, 20, 2)

	n := len(closes) - 1
	if math.IsNaN(upper[n]) || math.IsNaN(middle[n]) || math.IsNaN(lower[n]) {
		t.Fatal("bands should be defined at the last bar")
	}
	if !(lower[n] < middle[n] && middle[n] < upper[n]) {
		t.Errorf("band ordering violated: lower=%v middle=%v upper=%v", lower[n], middle[n], upper[n])
	}
}

func TestMACDSeriesWarmup(t *testing.T) {
	closes := risingCloses(60, 100, 1)
	macd, signal := MACDSeries(closes, 12, 26, 9)

	if len(macd) != len(closes) || len(signal) != len(closes) {
		t.Fatal("series length mismatch")
	}
	if !math.IsNaN(macd[20]) {
		t.Error("MACD should be undefined before the slow period completes")
	}
	n := len(closes) - 1
	if math.IsNaN(macd[n]) || math.IsNaN(signal[n]) {
		t.Error("MACD and signal should be defined at the last bar")
	}
}

func candlesFromCloses(closes []float64, volume int64) []models.Candle {
	out := make([]models.Candle, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = models.Candle{
			Timestamp: base.AddDate(0, 0, i),
			Open:      c, High: c, Low: c, Close: c,
			Volume: volume,
		}
	}
	return out
}

func TestSnapshotShortHistory(t *testing.T) {
	snap := Snapshot(candlesFromCloses(risingCloses(10, 100, 1), 1000), 14)

	if snap.HasTrend {
		t.Error("10 bars cannot define a 20/50 SMA pair")
	}
	if snap.HasMACD {
		t.Error("10 bars cannot define MACD")
	}
	if snap.HasBands {
		t.Error("10 bars cannot define Bollinger bands")
	}
	if snap.AvgVolume != 0 {
		t.Errorf("AvgVolume = %v, want 0 without a full volume window", snap.AvgVolume)
	}
}

func TestSnapshotFullHistory(t *testing.T) {
	closes := risingCloses(250, 100, 0.5)
	snap := Snapshot(candlesFromCloses(closes, 1000), 14)

	if !snap.HasTrend || !snap.HasSMA200 || !snap.HasMACD || !snap.HasBands {
		t.Fatalf("all indicators should be defined on 250 bars: %+v", snap)
	}
	if snap.SMAFast <= snap.SMASlow {
		t.Error("rising series should have fast SMA above slow SMA")
	}
	if snap.High20 != closes[len(closes)-1] {
		t.Errorf("High20 = %v, want last close %v on a rising series", snap.High20, closes[len(closes)-1])
	}
	if snap.AvgVolume != 1000 {
		t.Errorf("AvgVolume = %v, want 1000", snap.AvgVolume)
	}
	if snap.CurrentVolume != 1000 {
		t.Errorf("CurrentVolume = %v, want 1000", snap.CurrentVolume)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	snap := Snapshot(nil, 14)
	if snap == nil {
		t.Fatal("empty input should still yield a snapshot")
	}
	if snap.RSI != 50 {
		t.Errorf("RSI = %v, want neutral 50", snap.RSI)
	}
}
