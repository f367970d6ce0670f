package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Scanner/models"
)

// Telegram pushes high-confidence signals to a chat. Results below
// minConfidence are silently dropped so the channel stays readable.
type Telegram struct {
	bot           *tgbotapi.BotAPI
	chatID        int64
	minConfidence int
	logger        zerolog.Logger
}

// NewTelegram creates the notifier and verifies the token against the API.
func NewTelegram(token string, chatID int64, minConfidence int) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &Telegram{
		bot:           bot,
		chatID:        chatID,
		minConfidence: minConfidence,
		logger:        log.With().Str("component", "telegram").Logger(),
	}, nil
}

func (t *Telegram) Notify(ctx context.Context, results []models.ScanResult) error {
	for _, r := range results {
		if r.Confidence < t.minConfidence {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msg := tgbotapi.NewMessage(t.chatID, formatAlert(r))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := t.bot.Send(msg); err != nil {
			t.logger.Error().Err(err).Str("ticker", r.Ticker).Msg("Failed to send alert")
			return fmt.Errorf("sending alert for %s: %w", r.Ticker, err)
		}
		t.logger.Info().Str("ticker", r.Ticker).Int("confidence", r.Confidence).Msg("Alert sent")
	}
	return nil
}

func formatAlert(r models.ScanResult) string {
	direction := "🟢 BUY"
	if r.Signal == models.SignalSell {
		direction = "🔴 SELL"
	}
	return fmt.Sprintf("*%s* %s\n*Pattern:* %s\n*Confidence:* %d%%\n*Price:* %.2f\n*Stop:* %.2f\n*Target:* %.2f\n\n%s",
		r.Ticker, direction, r.Pattern, r.Confidence, r.Price, r.StopLoss, r.TakeProfit, r.Reason)
}
