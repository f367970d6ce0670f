package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	OpenAIAPIKey   string `env:"OPENAI_API_KEY" envDefault:"-"`
	NewsAPIKey     string `env:"NEWSAPI_AI_KEY" envDefault:"-"`
	TelegramToken  string `env:"TELEGRAM_TOKEN" envDefault:"-"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID" envDefault:"0"`

	DBHost     string `env:"DB_HOST" envDefault:""`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"scanner"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	Tickers            []string // override of the built-in universe, comma separated
	BatchSize          int      `env:"BATCH_SIZE" envDefault:"25"`
	ChunkSize          int      `env:"CHUNK_SIZE" envDefault:"5"`
	HistoryDays        int      `env:"HISTORY_DAYS" envDefault:"200"`
	RSIPeriod          int      `env:"RSI_PERIOD" envDefault:"14"`
	DivergenceLookback int      `env:"DIVERGENCE_LOOKBACK" envDefault:"20"`
	BacktestHorizon    int      `env:"BACKTEST_HORIZON" envDefault:"5"`

	EnablePatterns bool `env:"ENABLE_PATTERNS" envDefault:"true"`
	EnableNews     bool `env:"ENABLE_NEWS" envDefault:"true"`
	EnableSocial   bool `env:"ENABLE_SOCIAL" envDefault:"true"`

	AlertMinConfidence int    `env:"ALERT_MIN_CONFIDENCE" envDefault:"75"`
	ScanIntervalMin    int    `env:"SCAN_INTERVAL_MIN" envDefault:"0"` // 0 = single scan
	RequestTimeout     int    `env:"REQUEST_TIMEOUT" envDefault:"30"`  // seconds
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_AI_KEY")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0)

	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = getEnvWithDefault("DB_PORT", "5432")
	cfg.DBUser = getEnvWithDefault("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnvWithDefault("DB_NAME", "scanner")
	cfg.DBSSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if tickers := os.Getenv("TICKERS"); tickers != "" {
		for _, t := range strings.Split(tickers, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Tickers = append(cfg.Tickers, t)
			}
		}
	}

	cfg.BatchSize = getEnvIntWithDefault("BATCH_SIZE", 25)
	cfg.ChunkSize = getEnvIntWithDefault("CHUNK_SIZE", 5)
	cfg.HistoryDays = getEnvIntWithDefault("HISTORY_DAYS", 200)
	cfg.RSIPeriod = getEnvIntWithDefault("RSI_PERIOD", 14)
	cfg.DivergenceLookback = getEnvIntWithDefault("DIVERGENCE_LOOKBACK", 20)
	cfg.BacktestHorizon = getEnvIntWithDefault("BACKTEST_HORIZON", 5)

	cfg.EnablePatterns = getEnvBoolWithDefault("ENABLE_PATTERNS", true)
	cfg.EnableNews = getEnvBoolWithDefault("ENABLE_NEWS", true)
	cfg.EnableSocial = getEnvBoolWithDefault("ENABLE_SOCIAL", true)

	cfg.AlertMinConfidence = getEnvIntWithDefault("ALERT_MIN_CONFIDENCE", 75)
	cfg.ScanIntervalMin = getEnvIntWithDefault("SCAN_INTERVAL_MIN", 0)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
