// Package bot is the Telegram-facing surface: it maps inbound commands to
// the catalog, resolver and scheduler, and delivers outbound messages.
package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// New initialises the Telegram client and registers the command menu.
func New(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	api.Debug = false

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Welcome and command overview"},
		{Command: "help", Description: "Command overview"},
		{Command: "yesterday", Description: "Yesterday's events"},
		{Command: "today", Description: "Today's events"},
		{Command: "tomorrow", Description: "Tomorrow's events"},
		{Command: "date", Description: "Events for a date, DD:MM or DD-MM"},
		{Command: "daily", Description: "Send the day's events every day at HH:MM"},
		{Command: "daily_off", Description: "Stop the daily sending"},
	}

	if _, err := api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return nil, fmt.Errorf("set commands: %w", err)
	}

	return api, nil
}
