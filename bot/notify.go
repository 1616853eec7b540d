package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"brewtalk/config"
)

// Notifier pushes one-line order updates to the operator's Telegram
// chat. A nil Notifier is a valid no-op, so callers never have to check
// whether notifications are configured.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New returns nil (no error) when the token or chat id is missing.
func New(cfg config.TelegramConfig) (*Notifier, error) {
	if cfg.Token == "" || cfg.ChatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Notifier{api: api, chatID: cfg.ChatID}, nil
}

func (n *Notifier) NotifyNewOrder(orderID int64, total float64) error {
	if n == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("New order #%d placed. Total: %.2f", orderID, total))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send order notification: %w", err)
	}
	return nil
}
