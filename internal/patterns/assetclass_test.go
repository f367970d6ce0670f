package patterns

import "testing"

func TestAssetClassMultiplier(t *testing.T) {
	tests := []struct {
		ticker string
		want   float64
	}{
		{"AAPL", 1.00},
		{"MSFT", 1.00},
		{"GME", 0.70},
		{"AMC", 0.70},
		{"MULN", 0.70},
		{"BTC-USD", 0.85},
		{"DOGE-USD", 0.85},
		{"EURUSD=X", 1.05},
		{"USDJPY=X", 1.05},
		{"GC=F", 1.00},
		{"CL=F", 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			got := AssetClassMultiplier(tt.ticker)
			if got != tt.want {
				t.Errorf("AssetClassMultiplier(%q) = %v, want %v", tt.ticker, got, tt.want)
			}
		})
	}
}

func TestAssetClassMemeBeforeSuffix(t *testing.T) {
	// A meme ticker is penalised even though it has no suffix.
	if got := AssetClassMultiplier("GME"); got != 0.70 {
		t.Errorf("GME multiplier = %v, want 0.70", got)
	}
}
