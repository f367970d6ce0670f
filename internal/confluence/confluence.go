package confluence

import "github.com/Alias1177/Scanner/models"

// Thresholds for the individual factor opinions.
const (
	rsiBuyBelow     = 45
	rsiSellAbove    = 55
	volumeRatio     = 1.3
	supportBand     = 1.02 // within 2% of the 20-day low
	resistanceBand  = 0.98 // within 2% of the 20-day high
	newsAgreeCutoff = 0.3
)

// Score counts how many independent factors agree with the proposed
// direction. Deliberately unweighted: each factor is one vote, which keeps
// the score auditable.
func Score(f models.ConfluenceFactors) int {
	score := 0
	if f.RSISupports {
		score++
	}
	if f.MACDSupports {
		score++
	}
	if f.TrendAligned {
		score++
	}
	if f.VolumeConfirms {
		score++
	}
	if f.BollingerSupports {
		score++
	}
	if f.AtKeyLevel {
		score++
	}
	if f.NewsAligned {
		score++
	}
	return score
}

// BuildFactors evaluates the seven boolean opinions against a proposed
// direction. Undefined indicators vote false rather than guessing.
func BuildFactors(signal models.Signal, snap *models.IndicatorSnapshot, price float64, sent models.SentimentAnalysis) models.ConfluenceFactors {
	buy := signal == models.SignalBuy

	return models.ConfluenceFactors{
		RSISupports: (buy && snap.RSI < rsiBuyBelow) || (!buy && snap.RSI > rsiSellAbove),

		MACDSupports: snap.HasMACD &&
			((buy && snap.MACD > snap.MACDSignal) || (!buy && snap.MACD < snap.MACDSignal)),

		TrendAligned: snap.HasTrend &&
			((buy && snap.SMAFast > snap.SMASlow) || (!buy && snap.SMAFast < snap.SMASlow)),

		VolumeConfirms: snap.AvgVolume > 0 && snap.CurrentVolume > snap.AvgVolume*volumeRatio,

		BollingerSupports: snap.HasBands &&
			((buy && price <= snap.BBLower) || (!buy && price >= snap.BBUpper)),

		AtKeyLevel: (buy && price <= snap.Low20*supportBand) ||
			(!buy && price >= snap.High20*resistanceBand),

		NewsAligned: (buy && sent.Sentiment > newsAgreeCutoff) ||
			(!buy && sent.Sentiment < -newsAgreeCutoff),
	}
}
