package models

import (
	"time"
)

// Signal is the proposed trade direction for a scan result.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
)

// Candle represents a single price candle
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume,omitempty"`
}

// PatternRecord holds the historical reliability stats for one chart pattern.
// SuccessRate is a 0-100 percentage, AvgMove a signed percent move.
type PatternRecord struct {
	Name           string  `json:"name"`
	SuccessRate    float64 `json:"success_rate"`
	AvgMove        float64 `json:"avg_move"`
	BestCondition  string  `json:"best_condition"`
	WorstCondition string  `json:"worst_condition"`
	VolumeCritical bool    `json:"volume_critical"`
}

// IndicatorSnapshot is a read-only view of one ticker's indicator state at the
// evaluation instant. Computed by internal/calculate, consumed by the scan
// cascade. The backtester does not use it, it rescans full history on its own.
type IndicatorSnapshot struct {
	RSI       float64   `json:"rsi"`
	RSISeries []float64 `json:"-"` // full history, needed by the divergence detector

	SMAFast     float64 `json:"sma_fast"` // 20-period
	SMASlow     float64 `json:"sma_slow"` // 50-period
	SMA200      float64 `json:"sma_200"`
	PrevSMAFast float64 `json:"prev_sma_fast"`
	PrevSMASlow float64 `json:"prev_sma_slow"`
	HasTrend    bool    `json:"has_trend"` // both SMAs defined for current and previous bar
	HasSMA200   bool    `json:"has_sma_200"`

	MACD           float64 `json:"macd"`
	MACDSignal     float64 `json:"macd_signal"`
	PrevMACD       float64 `json:"prev_macd"`
	PrevMACDSignal float64 `json:"prev_macd_signal"`
	HasMACD        bool    `json:"has_macd"`

	BBUpper  float64 `json:"bb_upper"`
	BBMiddle float64 `json:"bb_middle"`
	BBLower  float64 `json:"bb_lower"`
	HasBands bool    `json:"has_bands"`

	High20 float64 `json:"high_20"` // 20-day closing high
	Low20  float64 `json:"low_20"`  // 20-day closing low

	AvgVolume     float64 `json:"avg_volume"` // mean of last 20 bars
	CurrentVolume float64 `json:"current_volume"`
}

// ConfluenceFactors are seven independent boolean opinions, each meaningful
// only relative to a proposed direction.
type ConfluenceFactors struct {
	RSISupports       bool `json:"rsi_supports"`
	MACDSupports      bool `json:"macd_supports"`
	TrendAligned      bool `json:"trend_aligned"`
	VolumeConfirms    bool `json:"volume_confirms"`
	BollingerSupports bool `json:"bollinger_supports"`
	AtKeyLevel        bool `json:"at_key_level"`
	NewsAligned       bool `json:"news_aligned"`
}

// BacktestResult is the outcome of replaying one pattern against a ticker's
// own price history. SampleSize 0 means "no per-ticker backtest available",
// which is a valid state, not an error.
type BacktestResult struct {
	WinRate    float64 `json:"win_rate"`   // 0-100
	AvgReturn  float64 `json:"avg_return"` // signed percent
	SampleSize int     `json:"sample_size"`
}

// SentimentAnalysis is the resolved output of the LLM headline analyzer.
// Zero values mean neutral / unavailable.
type SentimentAnalysis struct {
	Sentiment  float64 `json:"sentiment"`  // -1..1
	SocialHype float64 `json:"socialHype"` // 0..10
	Summary    string  `json:"summary"`
}

// ScanResult is one fired alert for one ticker. Created fresh per scan cycle,
// never mutated after construction.
type ScanResult struct {
	Ticker     string    `json:"ticker"`
	Pattern    string    `json:"pattern"`
	Signal     Signal    `json:"signal"`
	Confidence int       `json:"confidence"` // 10-95
	Price      float64   `json:"price"`
	StopLoss   float64   `json:"stop_loss"`
	TakeProfit float64   `json:"take_profit"`
	Reason     string    `json:"reason"`
	ScannedAt  time.Time `json:"scanned_at"`
}
