package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger is the injected sender capability used by the notifier's fire
// path and the direct reply path.
type Messenger struct {
	api *tgbotapi.BotAPI
}

func NewMessenger(api *tgbotapi.BotAPI) *Messenger {
	return &Messenger{api: api}
}

func (m *Messenger) Send(_ context.Context, recipientID int64, text string) error {
	msg := tgbotapi.NewMessage(recipientID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := m.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
