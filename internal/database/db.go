package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Scanner/models"
)

// ConnectionParams параметры подключения к базе
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type DB struct {
	conn *sql.DB
}

// New открывает соединение и создает таблицы
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	log.Info().Str("host", params.Host).Str("db", params.DBName).Msg("Connected to database")
	return db, nil
}

func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS scan_results (
		ticker      TEXT PRIMARY KEY,
		pattern     TEXT NOT NULL,
		signal      TEXT NOT NULL,
		confidence  INTEGER NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		stop_loss   DOUBLE PRECISION NOT NULL,
		take_profit DOUBLE PRECISION NOT NULL,
		reason      TEXT NOT NULL,
		scanned_at  TIMESTAMPTZ NOT NULL
	)`
	_, err := db.conn.Exec(query)
	return err
}

// SaveResults upserts one row per ticker, keeping only the latest signal.
func (db *DB) SaveResults(ctx context.Context, results []models.ScanResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scan_results (ticker, pattern, signal, confidence, price, stop_loss, take_profit, reason, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (ticker) DO UPDATE SET
			pattern = EXCLUDED.pattern,
			signal = EXCLUDED.signal,
			confidence = EXCLUDED.confidence,
			price = EXCLUDED.price,
			stop_loss = EXCLUDED.stop_loss,
			take_profit = EXCLUDED.take_profit,
			reason = EXCLUDED.reason,
			scanned_at = EXCLUDED.scanned_at`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, r.Ticker, r.Pattern, string(r.Signal), r.Confidence,
			r.Price, r.StopLoss, r.TakeProfit, r.Reason, r.ScannedAt); err != nil {
			return fmt.Errorf("inserting result for %s: %w", r.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	log.Debug().Int("count", len(results)).Msg("Saved scan results")
	return nil
}

// LatestResults returns results scanned within maxAge, strongest first.
func (db *DB) LatestResults(ctx context.Context, maxAge time.Duration) ([]models.ScanResult, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT ticker, pattern, signal, confidence, price, stop_loss, take_profit, reason, scanned_at
		FROM scan_results
		WHERE scanned_at > $1
		ORDER BY confidence DESC`, time.Now().Add(-maxAge))
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []models.ScanResult
	for rows.Next() {
		var r models.ScanResult
		var signal string
		if err := rows.Scan(&r.Ticker, &r.Pattern, &signal, &r.Confidence,
			&r.Price, &r.StopLoss, &r.TakeProfit, &r.Reason, &r.ScannedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Signal = models.Signal(signal)
		results = append(results, r)
	}
	return results, rows.Err()
}

func (db *DB) Close() error {
	return db.conn.Close()
}
