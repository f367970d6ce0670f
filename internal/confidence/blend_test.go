package confidence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

func baseInput() Input {
	return Input{
		Ticker:          "AAPL",
		Pattern:         patterns.RSIOversold,
		Signal:          models.SignalBuy,
		BaseReason:      "RSI 25.0 suggests oversold conditions.",
		ConfluenceScore: 3,
		AssetMultiplier: 1.0,
	}
}

func TestBlendCatalogOnly(t *testing.T) {
	// Score 3 is the neutral multiplier, so the catalog rate passes through.
	conf, reason := Blend(baseInput())

	assert.Equal(t, 62, conf)
	assert.Contains(t, reason, "Historical success: 62%")
	assert.Contains(t, reason, "Confluence: 3/7")
}

func TestBlendBacktestDominates(t *testing.T) {
	in := baseInput()
	in.Backtest = models.BacktestResult{WinRate: 80, AvgReturn: 3.5, SampleSize: 5}

	conf, reason := Blend(in)

	// 80*0.6 + 62*0.4 = 72.8, rounded to 73.
	assert.Equal(t, 73, conf)
	assert.Contains(t, reason, "Backtested on AAPL")
	assert.Contains(t, reason, "5 past occurrences")
}

func TestBlendSmallSampleIgnored(t *testing.T) {
	in := baseInput()
	in.Backtest = models.BacktestResult{WinRate: 100, SampleSize: 2}

	conf, reason := Blend(in)

	assert.Equal(t, 62, conf, "two occurrences are not statistically meaningful")
	assert.NotContains(t, reason, "Backtested")
}

func TestBlendSentimentDisagreementPenalty(t *testing.T) {
	in := baseInput()
	in.Backtest = models.BacktestResult{WinRate: 80, SampleSize: 5}
	in.Sentiment = models.SentimentAnalysis{Sentiment: -0.5, Summary: "lawsuit risk"}

	conf, reason := Blend(in)

	// 72.8 - 15 = 57.8, rounded to 58.
	assert.Equal(t, 58, conf)
	assert.Contains(t, reason, "WARNING: News is NEGATIVE")
	assert.Contains(t, reason, "lawsuit risk")
}

func TestBlendSentimentAgreementConfirms(t *testing.T) {
	in := baseInput()
	in.Sentiment = models.SentimentAnalysis{Sentiment: 0.6, Summary: "strong earnings"}

	conf, reason := Blend(in)

	assert.Equal(t, 62, conf, "agreement annotates but does not add points")
	assert.Contains(t, reason, "CONFIRMED by Positive News")
}

func TestBlendHypeNote(t *testing.T) {
	in := baseInput()
	in.Sentiment = models.SentimentAnalysis{SocialHype: 8}

	_, reason := Blend(in)

	assert.Contains(t, reason, "High Viral/Social Activity")
}

func TestBlendMonotonicInConfluence(t *testing.T) {
	prev := 0
	for score := 0; score <= 7; score++ {
		in := baseInput()
		in.ConfluenceScore = score
		conf, _ := Blend(in)
		assert.GreaterOrEqual(t, conf, prev, "score %d", score)
		prev = conf
	}
}

func TestBlendAlwaysWithinBounds(t *testing.T) {
	patternNames := []string{
		patterns.RSIOversold, patterns.GoldenCross, patterns.MultiSignal,
		patterns.SocialHype, "Unknown Pattern",
	}
	sentiments := []float64{-0.9, 0, 0.9}
	multipliers := []float64{0.70, 0.85, 1.0, 1.05}

	for _, name := range patternNames {
		for score := -1; score <= 8; score++ {
			for _, s := range sentiments {
				for _, m := range multipliers {
					in := baseInput()
					in.Pattern = name
					in.ConfluenceScore = score
					in.AssetMultiplier = m
					in.Sentiment = models.SentimentAnalysis{Sentiment: s}
					in.Backtest = models.BacktestResult{WinRate: 95, SampleSize: 10}

					conf, reason := Blend(in)

					assert.GreaterOrEqual(t, conf, MinConfidence)
					assert.LessOrEqual(t, conf, MaxConfidence)
					assert.True(t, strings.HasPrefix(reason, in.BaseReason))
				}
			}
		}
	}
}

func TestBlendAssetMultiplierShrinksMemeConfidence(t *testing.T) {
	in := baseInput()
	reliable, _ := Blend(in)

	in.Ticker = "GME"
	in.AssetMultiplier = 0.70
	meme, _ := Blend(in)

	assert.Less(t, meme, reliable)
}
