package scan

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Scanner/internal/backtest"
	"github.com/Alias1177/Scanner/internal/calculate"
	"github.com/Alias1177/Scanner/internal/confidence"
	"github.com/Alias1177/Scanner/internal/confluence"
	"github.com/Alias1177/Scanner/internal/patterns"
	"github.com/Alias1177/Scanner/models"
)

// minHistory is the shortest close series worth evaluating at all.
const minHistory = 30

// Orchestrator runs the priority cascade for one ticker and produces at most
// one ScanResult. It is stateless between calls, so independent tickers can
// be evaluated in parallel.
type Orchestrator struct {
	horizon  int // backtest forward-return horizon in bars
	lookback int // divergence detection window
	logger   zerolog.Logger
}

// New creates an orchestrator. Non-positive parameters fall back to the
// standard 5-bar horizon and 20-bar lookback.
func New(horizon, lookback int) *Orchestrator {
	if horizon <= 0 {
		horizon = 5
	}
	if lookback <= 0 {
		lookback = 20
	}
	return &Orchestrator{
		horizon:  horizon,
		lookback: lookback,
		logger:   log.With().Str("component", "orchestrator").Logger(),
	}
}

// Analyze evaluates the cascade for one ticker. A nil result is the normal
// outcome for most tickers on most scans: it means no rule fired, or the
// input was too short or not finite. It is never an error.
func (o *Orchestrator) Analyze(ticker string, candles []models.Candle, snap *models.IndicatorSnapshot, sent models.SentimentAnalysis, sources Sources) *models.ScanResult {
	if snap == nil || len(candles) < minHistory {
		return nil
	}

	closes := calculate.Closes(candles)
	price := closes[len(closes)-1]
	if !finite(price) || price <= 0 {
		o.logger.Warn().Str("ticker", ticker).Float64("price", price).Msg("rejecting non-finite price")
		return nil
	}

	rctx := &ruleContext{
		snap:  snap,
		price: price,
		div:   patterns.DetectRSIDivergence(closes, snap.RSISeries, o.lookback),
		sent:  sent,
	}

	for _, r := range cascade {
		if !r.src.enabled(sources) {
			continue
		}
		signal, baseReason, ok := r.detect(rctx)
		if !ok {
			continue
		}
		return o.buildResult(ticker, r.pattern, signal, baseReason, closes, snap, price, sent)
	}

	return nil
}

func (o *Orchestrator) buildResult(ticker, pattern string, signal models.Signal, baseReason string, closes []float64, snap *models.IndicatorSnapshot, price float64, sent models.SentimentAnalysis) *models.ScanResult {
	bt := backtest.Run(closes, pattern, signal, o.horizon)

	factors := confluence.BuildFactors(signal, snap, price, sent)
	score := confluence.Score(factors)

	conf, reason := confidence.Blend(confidence.Input{
		Ticker:          ticker,
		Pattern:         pattern,
		Signal:          signal,
		BaseReason:      baseReason,
		Backtest:        bt,
		ConfluenceScore: score,
		AssetMultiplier: patterns.AssetClassMultiplier(ticker),
		Sentiment:       sent,
	})

	stopLoss, takeProfit := RiskPlan(price, closes, signal)
	if !finite(stopLoss) || !finite(takeProfit) {
		o.logger.Warn().Str("ticker", ticker).Msg("rejecting non-finite risk plan")
		return nil
	}

	o.logger.Debug().
		Str("ticker", ticker).
		Str("pattern", pattern).
		Str("signal", string(signal)).
		Int("confidence", conf).
		Int("confluence", score).
		Int("backtest_samples", bt.SampleSize).
		Msg("signal fired")

	return &models.ScanResult{
		Ticker:     ticker,
		Pattern:    pattern,
		Signal:     signal,
		Confidence: conf,
		Price:      round2(price),
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		Reason:     reason,
		ScannedAt:  time.Now(),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
