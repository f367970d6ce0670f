package confidence

import (
	"fmt"
	"math"
	"strings"

	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

// Bounds of every reported confidence. The engine never claims
// near-certainty or near-impossibility.
const (
	MinConfidence = 10
	MaxConfidence = 95
)

const sentimentCutoff = 0.3

// confluenceMultipliers is indexed by confluence score 0-7. Three agreeing
// factors are the baseline; fewer factors actively shrink confidence.
var confluenceMultipliers = [8]float64{0.5, 0.7, 0.85, 1.0, 1.1, 1.2, 1.3, 1.4}

// Input carries everything the blender needs for one fired signal.
type Input struct {
	Ticker          string
	Pattern         string
	Signal          models.Signal
	BaseReason      string
	Backtest        models.BacktestResult
	ConfluenceScore int
	AssetMultiplier float64
	Sentiment       models.SentimentAnalysis
}

// Blend combines the catalog rate, the per-ticker backtest, the confluence
// multiplier, the asset-class multiplier and the sentiment cross-reference
// into a bounded confidence plus a human-readable explanation. The
// explanation is a first-class output: every adjustment leaves a note.
func Blend(in Input) (int, string) {
	var reason strings.Builder
	reason.WriteString(in.BaseReason)

	// 1. Catalog base rate, neutral 50 for unknown patterns.
	base := 50.0
	if rec, ok := patterns.Lookup(in.Pattern); ok {
		base = rec.SuccessRate
		fmt.Fprintf(&reason, " (Historical success: %.0f%%, avg move: %+.0f%%)",
			rec.SuccessRate, rec.AvgMove)
	}

	// 2. Ticker-specific evidence dominates when the sample is large enough.
	effective := base
	if in.Backtest.SampleSize >= 3 {
		effective = in.Backtest.WinRate*0.6 + base*0.4
		fmt.Fprintf(&reason, " 📊 Backtested on %s: %.0f%% win rate over %d past occurrences (avg %+.2f%%).",
			in.Ticker, in.Backtest.WinRate, in.Backtest.SampleSize, in.Backtest.AvgReturn)
	}

	// 3. Confluence multiplier.
	score := in.ConfluenceScore
	if score < 0 {
		score = 0
	}
	if score > 7 {
		score = 7
	}
	conf := effective * confluenceMultipliers[score]
	fmt.Fprintf(&reason, " | Confluence: %d/7", score)

	// 4. Asset-class reliability.
	conf *= in.AssetMultiplier

	// 5. Sentiment cross-reference: agreement confirms, disagreement costs a
	// flat 15 points. Values inside (-0.3, 0.3) are neutral.
	switch {
	case in.Sentiment.Sentiment > sentimentCutoff:
		if in.Signal == models.SignalBuy {
			fmt.Fprintf(&reason, " ✅ CONFIRMED by Positive News (%s)", in.Sentiment.Summary)
		} else {
			conf -= 15
			fmt.Fprintf(&reason, " ⚠️ WARNING: News is POSITIVE (%s)", in.Sentiment.Summary)
		}
	case in.Sentiment.Sentiment < -sentimentCutoff:
		if in.Signal == models.SignalSell {
			fmt.Fprintf(&reason, " ✅ CONFIRMED by Negative News (%s)", in.Sentiment.Summary)
		} else {
			conf -= 15
			fmt.Fprintf(&reason, " ⚠️ WARNING: News is NEGATIVE (%s)", in.Sentiment.Summary)
		}
	}

	if in.Sentiment.SocialHype > 7 {
		reason.WriteString(" 🔥 High Viral/Social Activity detected!")
	}

	// 6. Clamp to the reportable interval.
	final := int(math.Round(conf))
	if final < MinConfidence {
		final = MinConfidence
	}
	if final > MaxConfidence {
		final = MaxConfidence
	}

	return final, reason.String()
}
