package scan

import (
	"fmt"

	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

// Sources toggles which signal families the cascade evaluates.
type Sources struct {
	Patterns bool
	News     bool
	Social   bool
}

// DefaultSources enables everything.
func DefaultSources() Sources {
	return Sources{Patterns: true, News: true, Social: true}
}

type source int

const (
	srcPatterns source = iota
	srcNews
	srcSocial
)

func (s source) enabled(src Sources) bool {
	switch s {
	case srcPatterns:
		return src.Patterns
	case srcNews:
		return src.News
	default:
		return src.Social
	}
}

// ruleContext is everything a detector may look at for one ticker.
type ruleContext struct {
	snap  *models.IndicatorSnapshot
	price float64
	div   patterns.Divergence
	sent  models.SentimentAnalysis
}

// rule pairs a pattern name with its predicate. The cascade is an ordered
// slice so priority lives in data, not in nested conditionals, and each rule
// is testable on its own.
type rule struct {
	pattern string
	src     source
	detect  func(*ruleContext) (models.Signal, string, bool)
}

const (
	oversoldLevel   = 30
	overboughtLevel = 70
	strongSentiment = 0.5
	strongHype      = 7
)

// cascade lists the rules in strict priority order: divergence first, then
// RSI extremes, SMA crosses, MACD crosses, Bollinger touches, and finally
// sentiment-only plays. The first rule that fires wins.
var cascade = []rule{
	{
		pattern: patterns.BullishDivergence,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.div.Type != patterns.DivergenceBullish {
				return "", "", false
			}
			return models.SignalBuy, fmt.Sprintf(
				"Bullish RSI Divergence detected (strength: %.1f). Price making lower lows while RSI makes higher lows, historically 73%% reliable reversal signal.",
				c.div.Strength), true
		},
	},
	{
		pattern: patterns.BearishDivergence,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.div.Type != patterns.DivergenceBearish {
				return "", "", false
			}
			return models.SignalSell, fmt.Sprintf(
				"Bearish RSI Divergence detected (strength: %.1f). Price making higher highs while RSI makes lower highs, historically 71%% reliable reversal signal.",
				c.div.Strength), true
		},
	},
	{
		pattern: patterns.RSIOversold,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.snap.RSI >= oversoldLevel {
				return "", "", false
			}
			return models.SignalBuy, fmt.Sprintf("RSI %.1f suggests oversold conditions.", c.snap.RSI), true
		},
	},
	{
		pattern: patterns.RSIOverbought,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.snap.RSI <= overboughtLevel {
				return "", "", false
			}
			return models.SignalSell, fmt.Sprintf("RSI %.1f suggests overbought conditions.", c.snap.RSI), true
		},
	},
	{
		pattern: patterns.GoldenCross,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasTrend {
				return "", "", false
			}
			if c.snap.PrevSMAFast < c.snap.PrevSMASlow && c.snap.SMAFast > c.snap.SMASlow {
				return models.SignalBuy, "Bullish 20/50 SMA Crossover.", true
			}
			return "", "", false
		},
	},
	{
		pattern: patterns.DeathCross,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasTrend {
				return "", "", false
			}
			if c.snap.PrevSMAFast > c.snap.PrevSMASlow && c.snap.SMAFast < c.snap.SMASlow {
				return models.SignalSell, "Bearish 20/50 SMA Crossover.", true
			}
			return "", "", false
		},
	},
	{
		pattern: patterns.MACDBullishCross,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasMACD {
				return "", "", false
			}
			if c.snap.PrevMACD < c.snap.PrevMACDSignal && c.snap.MACD > c.snap.MACDSignal {
				return models.SignalBuy, "MACD crossed above signal line.", true
			}
			return "", "", false
		},
	},
	{
		pattern: patterns.MACDBearishCross,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasMACD {
				return "", "", false
			}
			if c.snap.PrevMACD > c.snap.PrevMACDSignal && c.snap.MACD < c.snap.MACDSignal {
				return models.SignalSell, "MACD crossed below signal line.", true
			}
			return "", "", false
		},
	},
	{
		pattern: patterns.BollingerLower,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasBands || c.price > c.snap.BBLower {
				return "", "", false
			}
			return models.SignalBuy, fmt.Sprintf(
				"Price at lower Bollinger Band ($%.2f), potential bounce.", c.snap.BBLower), true
		},
	},
	{
		pattern: patterns.BollingerUpper,
		src:     srcPatterns,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if !c.snap.HasBands || c.price < c.snap.BBUpper {
				return "", "", false
			}
			return models.SignalSell, fmt.Sprintf(
				"Price at upper Bollinger Band ($%.2f), potential pullback.", c.snap.BBUpper), true
		},
	},
	{
		pattern: patterns.NewsSentimentPlay,
		src:     srcNews,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.sent.Sentiment > strongSentiment {
				return models.SignalBuy, fmt.Sprintf("Strong Positive News: %s", c.sent.Summary), true
			}
			if c.sent.Sentiment < -strongSentiment {
				return models.SignalSell, fmt.Sprintf("Strong Negative News: %s", c.sent.Summary), true
			}
			return "", "", false
		},
	},
	{
		pattern: patterns.SocialHype,
		src:     srcSocial,
		detect: func(c *ruleContext) (models.Signal, string, bool) {
			if c.sent.SocialHype <= strongHype {
				return "", "", false
			}
			return models.SignalBuy, "Viral activity detected on social media.", true
		},
	},
}
