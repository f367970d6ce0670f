package patterns

import "testing"

const lookback = 20

func flatSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestDetectRSIDivergenceShortSeries(t *testing.T) {
	closes := flatSeries(10, 100)
	rsi := flatSeries(10, 50)

	div := DetectRSIDivergence(closes, rsi, lookback)
	if div.Type != DivergenceNone {
		t.Errorf("short series should yield none, got %v", div.Type)
	}
}

func TestDetectRSIDivergenceBullish(t *testing.T) {
	// Price: lower low at index 15 (90) after the low at index 5 (92).
	// RSI: higher low at the second swing (32 > 25) and still below 40.
	closes := flatSeries(lookback, 100)
	rsi := flatSeries(lookback, 50)
	closes[5], rsi[5] = 92, 25
	closes[15], rsi[15] = 90, 32

	div := DetectRSIDivergence(closes, rsi, lookback)
	if div.Type != DivergenceBullish {
		t.Fatalf("expected bullish divergence, got %v", div.Type)
	}
	if div.Strength != 7 {
		t.Errorf("Strength = %v, want 7", div.Strength)
	}
}

func TestDetectRSIDivergenceBearish(t *testing.T) {
	// Price: higher high at index 15 (112) after the high at index 5 (110).
	// RSI: lower high at the second swing (65 < 75) and still above 60.
	closes := flatSeries(lookback, 100)
	rsi := flatSeries(lookback, 50)
	closes[5], rsi[5] = 110, 75
	closes[15], rsi[15] = 112, 65

	div := DetectRSIDivergence(closes, rsi, lookback)
	if div.Type != DivergenceBearish {
		t.Fatalf("expected bearish divergence, got %v", div.Type)
	}
	if div.Strength != 10 {
		t.Errorf("Strength = %v, want 10", div.Strength)
	}
}

func TestDetectRSIDivergenceAgreementIsNone(t *testing.T) {
	// Lower low with a lower RSI low is trend continuation, not divergence.
	closes := flatSeries(lookback, 100)
	rsi := flatSeries(lookback, 50)
	closes[5], rsi[5] = 92, 35
	closes[15], rsi[15] = 90, 28

	div := DetectRSIDivergence(closes, rsi, lookback)
	if div.Type != DivergenceNone {
		t.Errorf("agreeing swings should yield none, got %v", div.Type)
	}
}

func TestDetectRSIDivergenceNeedsDepressedRSI(t *testing.T) {
	// Same price structure but the RSI swing low sits at 45, above the 40
	// cutoff, so no signal.
	closes := flatSeries(lookback, 100)
	rsi := flatSeries(lookback, 50)
	closes[5], rsi[5] = 92, 42
	closes[15], rsi[15] = 90, 45

	div := DetectRSIDivergence(closes, rsi, lookback)
	if div.Type != DivergenceNone {
		t.Errorf("RSI above cutoff should yield none, got %v", div.Type)
	}
}
