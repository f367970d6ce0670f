package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Scanner/internal/api/newsapi"
	"github.com/Alias1177/Scanner/internal/api/yahoo"
	"github.com/Alias1177/Scanner/internal/config"
	"github.com/Alias1177/Scanner/internal/database"
	"github.com/Alias1177/Scanner/internal/notify"
	"github.com/Alias1177/Scanner/internal/scan"
	"github.com/Alias1177/Scanner/internal/scanner"
	"github.com/Alias1177/Scanner/internal/sentiment"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	market := yahoo.NewClient(timeout)
	news := newsapi.NewClient(cfg.NewsAPIKey, timeout)
	analyzer := sentiment.NewOpenAIAnalyzer(cfg.OpenAIAPIKey)

	var storage scanner.Storage
	if cfg.DBHost != "" {
		db, err := database.New(database.ConnectionParams{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		storage = db
	}

	notifiers := []scanner.Notifier{notify.NewConsole(os.Stdout)}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, cfg.AlertMinConfidence)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create telegram notifier")
		}
		notifiers = append(notifiers, tg)
	}

	s := scanner.New(scanner.Config{
		Tickers:            cfg.Tickers,
		BatchSize:          cfg.BatchSize,
		ChunkSize:          cfg.ChunkSize,
		HistoryDays:        cfg.HistoryDays,
		RSIPeriod:          cfg.RSIPeriod,
		DivergenceLookback: cfg.DivergenceLookback,
		BacktestHorizon:    cfg.BacktestHorizon,
		Sources: scan.Sources{
			Patterns: cfg.EnablePatterns,
			News:     cfg.EnableNews,
			Social:   cfg.EnableSocial,
		},
		Interval: time.Duration(cfg.ScanIntervalMin) * time.Minute,
	}, market, news, analyzer, storage, notifiers...)

	if err := s.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("Scanner stopped with error")
	}
	log.Info().Msg("Scanner finished")
}
