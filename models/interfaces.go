package models

import "context"

// MarketDataClient provides price history and live quotes for a ticker.
type MarketDataClient interface {
	GetDailyCandles(ctx context.Context, ticker string, days int) ([]Candle, error)
	GetLivePrice(ctx context.Context, ticker string) (float64, error)
}

// NewsClient fetches recent headlines for a ticker.
type NewsClient interface {
	GetHeadlines(ctx context.Context, ticker string) ([]string, error)
}

// SentimentAnalyzer turns headlines into a sentiment/hype score. Implemented
// by the OpenAI adapter; injected so the scoring core never performs I/O.
type SentimentAnalyzer interface {
	AnalyzeHeadlines(ctx context.Context, headlines []string) (SentimentAnalysis, error)
}
