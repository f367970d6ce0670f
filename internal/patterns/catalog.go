package patterns

import "github.com/Alias1177/Scanner/models"

// Pattern names used across the cascade, the backtester and the catalog.
const (
	RSIOversold       = "RSI Oversold"
	RSIOverbought     = "RSI Overbought"
	BullishDivergence = "RSI Bullish Divergence"
	BearishDivergence = "RSI Bearish Divergence"
	GoldenCross       = "Golden Cross"
	DeathCross        = "Death Cross"
	MACDBullishCross  = "MACD Bullish Cross"
	MACDBearishCross  = "MACD Bearish Cross"
	BollingerLower    = "Bollinger Lower Touch"
	BollingerUpper    = "Bollinger Upper Touch"
	NewsSentimentPlay = "News Sentiment Play"
	SocialHype        = "Social Hype"
	MultiSignal       = "Multi-Signal Confluence"
)

// catalog содержит исторические проценты успеха паттернов
// (Bulkowski + академические исследования S&P 500 / NASDAQ, 20+ лет данных).
// Read-only, никакой мутации после старта процесса.
var catalog = map[string]models.PatternRecord{
	RSIOversold: {
		Name:           RSIOversold,
		SuccessRate:    62,
		AvgMove:        8,
		BestCondition:  "Ranging/mean-reverting market with price at support",
		WorstCondition: "Strong downtrend (RSI can stay <30 for weeks)",
	},
	RSIOverbought: {
		Name:           RSIOverbought,
		SuccessRate:    60,
		AvgMove:        -7,
		BestCondition:  "Ranging market with price at resistance",
		WorstCondition: "Strong uptrend (RSI can stay >70 for weeks)",
	},
	BullishDivergence: {
		Name:           BullishDivergence,
		SuccessRate:    73,
		AvgMove:        12,
		BestCondition:  "Price at major support with declining volume",
		WorstCondition: "Bear market with fundamental deterioration",
	},
	BearishDivergence: {
		Name:           BearishDivergence,
		SuccessRate:    71,
		AvgMove:        -11,
		BestCondition:  "Price at major resistance after extended rally",
		WorstCondition: "Bull market with strong fundamentals",
	},
	GoldenCross: {
		Name:           GoldenCross,
		SuccessRate:    74,
		AvgMove:        15,
		BestCondition:  "After a consolidation base with rising volume",
		WorstCondition: "Choppy/sideways market (many false signals)",
		VolumeCritical: true,
	},
	DeathCross: {
		Name:           DeathCross,
		SuccessRate:    71,
		AvgMove:        -13,
		BestCondition:  "Confirmed by increasing volume and bearish fundamentals",
		WorstCondition: "End of a pullback in a bull trend (whipsaw risk)",
		VolumeCritical: true,
	},
	MACDBullishCross: {
		Name:           MACDBullishCross,
		SuccessRate:    55,
		AvgMove:        6,
		BestCondition:  "Cross occurs near zero line with histogram increasing",
		WorstCondition: "Cross occurs far from zero line (signal lag)",
	},
	MACDBearishCross: {
		Name:           MACDBearishCross,
		SuccessRate:    54,
		AvgMove:        -5,
		BestCondition:  "Cross occurs near zero line with histogram decreasing",
		WorstCondition: "Cross occurs far from zero line (signal lag)",
	},
	BollingerLower: {
		Name:           BollingerLower,
		SuccessRate:    58,
		AvgMove:        5,
		BestCondition:  "Price at support + RSI oversold + bands widening",
		WorstCondition: "Bands walking (trending strongly down)",
	},
	BollingerUpper: {
		Name:           BollingerUpper,
		SuccessRate:    58,
		AvgMove:        -5,
		BestCondition:  "Price at resistance + RSI overbought + bands widening",
		WorstCondition: "Bands walking (trending strongly up)",
	},
	NewsSentimentPlay: {
		Name:           NewsSentimentPlay,
		SuccessRate:    55,
		AvgMove:        4,
		BestCondition:  "Multiple corroborating sources + technical alignment",
		WorstCondition: "Single source / clickbait headlines without substance",
	},
	SocialHype: {
		Name:           SocialHype,
		SuccessRate:    45,
		AvgMove:        8,
		BestCondition:  "Early stage hype with increasing institutional volume",
		WorstCondition: "Peak hype (often at top). High risk of reversal.",
	},
	MultiSignal: {
		Name:           MultiSignal,
		SuccessRate:    78,
		AvgMove:        14,
		BestCondition:  "3+ independent indicators agree on direction",
		WorstCondition: "Rare, confluence generally increases reliability",
		VolumeCritical: true,
	},
}

// Lookup returns the historical record for a pattern name. Absence is a
// valid outcome for novel pattern names, callers default to neutral 50%/0%.
func Lookup(name string) (models.PatternRecord, bool) {
	rec, ok := catalog[name]
	return rec, ok
}
