package scanner

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Scanner/internal/calculate"
	"github.com/Alias1177/Scanner/internal/scan"
	"github.com/Alias1177/Scanner/models"
)

// minBars задает минимум дневных баров для анализа тикера
const minBars = 50

// Notifier receives one ranked batch per completed scan cycle.
type Notifier interface {
	Notify(ctx context.Context, results []models.ScanResult) error
}

// Storage persists a completed scan cycle.
type Storage interface {
	SaveResults(ctx context.Context, results []models.ScanResult) error
}

// Config holds the scan-cycle knobs. Zero values are replaced with the
// standard defaults by New.
type Config struct {
	Tickers            []string
	BatchSize          int
	ChunkSize          int
	HistoryDays        int
	RSIPeriod          int
	DivergenceLookback int
	BacktestHorizon    int
	Sources            scan.Sources
	Interval           time.Duration
}

// Scanner drives the full cycle: pick a random batch of tickers, evaluate
// them concurrently in small chunks, rank the survivors and fan the batch out
// to storage and notifiers.
type Scanner struct {
	cfg          Config
	market       models.MarketDataClient
	news         models.NewsClient
	sentiment    models.SentimentAnalyzer
	storage      Storage
	notifiers    []Notifier
	orchestrator *scan.Orchestrator
	logger       zerolog.Logger
	rng          *rand.Rand
}

// New wires a scanner. news, analyzer, storage and notifiers may be nil or
// empty: the scanner degrades to pure technical scanning on stdout.
func New(cfg Config, market models.MarketDataClient, news models.NewsClient, analyzer models.SentimentAnalyzer, storage Storage, notifiers ...Notifier) *Scanner {
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = DefaultTickers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 25
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 5
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 200
	}
	if cfg.RSIPeriod <= 0 {
		cfg.RSIPeriod = 14
	}

	return &Scanner{
		cfg:          cfg,
		market:       market,
		news:         news,
		sentiment:    analyzer,
		storage:      storage,
		notifiers:    notifiers,
		orchestrator: scan.New(cfg.BacktestHorizon, cfg.DivergenceLookback),
		logger:       log.With().Str("component", "scanner").Logger(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes one cycle immediately, then repeats on the configured
// interval. A non-positive interval means scan once and return.
func (s *Scanner) Run(ctx context.Context) error {
	if err := s.runCycle(ctx); err != nil {
		return err
	}
	if s.cfg.Interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.runCycle(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Scan cycle failed")
			}
		}
	}
}

func (s *Scanner) runCycle(ctx context.Context) error {
	start := time.Now()
	results, err := s.ScanOnce(ctx)
	if err != nil {
		return err
	}
	s.logger.Info().
		Int("signals", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("Scan cycle complete")

	if s.storage != nil {
		if err := s.storage.SaveResults(ctx, results); err != nil {
			s.logger.Error().Err(err).Msg("Failed to persist results")
		}
	}
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, results); err != nil {
			s.logger.Error().Err(err).Msg("Notifier failed")
		}
	}
	return nil
}

// ScanOnce evaluates one random batch and returns the signals ranked by
// confidence, strongest first.
func (s *Scanner) ScanOnce(ctx context.Context) ([]models.ScanResult, error) {
	selected := s.pickTickers()
	s.logger.Info().Int("tickers", len(selected)).Msg("Starting scan")

	results := make([]models.ScanResult, 0, len(selected))
	var mu sync.Mutex

	// Chunked fan-out keeps concurrent upstream requests bounded.
	for start := 0; start < len(selected); start += s.cfg.ChunkSize {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		end := start + s.cfg.ChunkSize
		if end > len(selected) {
			end = len(selected)
		}

		var wg sync.WaitGroup
		for _, ticker := range selected[start:end] {
			wg.Add(1)
			go func(ticker string) {
				defer wg.Done()
				if r := s.analyzeTicker(ctx, ticker); r != nil {
					mu.Lock()
					results = append(results, *r)
					mu.Unlock()
				}
			}(ticker)
		}
		wg.Wait()
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results, nil
}

// pickTickers returns a random subset of the universe. A universe at or below
// the batch size is scanned whole, in order.
func (s *Scanner) pickTickers() []string {
	if len(s.cfg.Tickers) <= s.cfg.BatchSize {
		return s.cfg.Tickers
	}
	shuffled := make([]string, len(s.cfg.Tickers))
	copy(shuffled, s.cfg.Tickers)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:s.cfg.BatchSize]
}

func (s *Scanner) analyzeTicker(ctx context.Context, ticker string) *models.ScanResult {
	candles, err := s.market.GetDailyCandles(ctx, ticker, s.cfg.HistoryDays)
	if err != nil {
		s.logger.Debug().Err(err).Str("ticker", ticker).Msg("Skipping ticker, history fetch failed")
		return nil
	}
	if len(candles) < minBars {
		s.logger.Debug().Str("ticker", ticker).Int("bars", len(candles)).Msg("Skipping ticker, too little history")
		return nil
	}

	if live, err := s.market.GetLivePrice(ctx, ticker); err == nil && live > 0 {
		candles = mergeLivePrice(candles, live, time.Now())
	}

	snap := calculate.Snapshot(candles, s.cfg.RSIPeriod)

	sent := models.SentimentAnalysis{}
	if (s.cfg.Sources.News || s.cfg.Sources.Social) && s.news != nil && s.sentiment != nil {
		sent = s.fetchSentiment(ctx, ticker)
	}

	return s.orchestrator.Analyze(ticker, candles, snap, sent, s.cfg.Sources)
}

// fetchSentiment never fails the ticker: any upstream error degrades to
// neutral sentiment and the technical cascade still runs.
func (s *Scanner) fetchSentiment(ctx context.Context, ticker string) models.SentimentAnalysis {
	headlines, err := s.news.GetHeadlines(ctx, ticker)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("News fetch failed, continuing without sentiment")
		return models.SentimentAnalysis{}
	}
	if len(headlines) == 0 {
		return models.SentimentAnalysis{}
	}

	sent, err := s.sentiment.AnalyzeHeadlines(ctx, headlines)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Sentiment analysis failed, continuing without it")
		return models.SentimentAnalysis{}
	}
	return sent
}

// mergeLivePrice folds an intraday quote into the daily series without
// mutating the input slice. Same-day quotes update the last bar, otherwise a
// synthetic bar for today is appended.
func mergeLivePrice(candles []models.Candle, live float64, now time.Time) []models.Candle {
	if len(candles) == 0 {
		return candles
	}

	out := make([]models.Candle, len(candles))
	copy(out, candles)

	last := out[len(out)-1]
	ly, lm, ld := last.Timestamp.Date()
	ny, nm, nd := now.Date()

	if ly == ny && lm == nm && ld == nd {
		last.Close = live
		if live > last.High {
			last.High = live
		}
		if live < last.Low || last.Low == 0 {
			last.Low = live
		}
		out[len(out)-1] = last
		return out
	}

	return append(out, models.Candle{
		Timestamp: now,
		Open:      live,
		High:      live,
		Low:       live,
		Close:     live,
		Volume:    0,
	})
}
