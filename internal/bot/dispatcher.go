package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/dates"
	"github.com/chronist/daybook/internal/model"
)

const helpText = `*Daybook* 👋🤖

I show the events recorded for a given day of the year.

👉 /yesterday — yesterday's events
👉 /today — today's events
👉 /tomorrow — tomorrow's events

👉 /date DD:MM — events for the given date
👉 /daily HH:MM — send the day's events automatically at that time
👉 /daily_off — stop the automatic sending

❓ To see this message again: /help`

// Dispatcher reads updates from Telegram and maps commands onto the core
// services. Replies go through the same sender capability the notifier uses.
type Dispatcher struct {
	api       *tgbotapi.BotAPI
	logger    *zap.SugaredLogger
	history   historyService
	scheduler scheduler
	notifier  notifier
	sender    sender
	loc       *time.Location
}

type historyService interface {
	RenderFor(ctx context.Context, md model.MonthDay) string
}

type scheduler interface {
	Schedule(recipientID int64, hour, minute int, onFire func(recipientID int64)) (time.Time, error)
	Cancel(recipientID int64)
	Scheduled(recipientID int64) bool
}

type notifier interface {
	SendDaily(ctx context.Context, recipientID int64)
}

type sender interface {
	Send(ctx context.Context, recipientID int64, text string) error
}

func NewDispatcher(
	api *tgbotapi.BotAPI,
	logger *zap.SugaredLogger,
	history historyService,
	scheduler scheduler,
	notifier notifier,
	sender sender,
	loc *time.Location,
) *Dispatcher {
	return &Dispatcher{
		api:       api,
		logger:    logger,
		history:   history,
		scheduler: scheduler,
		notifier:  notifier,
		sender:    sender,
		loc:       loc,
	}
}

// Run processes the update long-poll loop until the update channel closes.
func (d *Dispatcher) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := d.api.GetUpdatesChan(u)
	d.logger.Infow("bot update loop started", "username", d.api.Self.UserName)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		d.handleCommand(ctx, update.Message)
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		d.reply(ctx, msg.Chat.ID, helpText)
	case "yesterday":
		d.replyRelative(ctx, msg.Chat.ID, -1)
	case "today":
		d.replyRelative(ctx, msg.Chat.ID, 0)
	case "tomorrow":
		d.replyRelative(ctx, msg.Chat.ID, 1)
	case "date":
		d.cmdDate(ctx, msg)
	case "daily":
		d.cmdDaily(ctx, msg)
	case "daily_off":
		d.cmdDailyOff(ctx, msg)
	default:
		d.reply(ctx, msg.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (d *Dispatcher) replyRelative(ctx context.Context, chatID int64, offsetDays int) {
	md := dates.ResolveRelativeDate(time.Now().In(d.loc), offsetDays)
	d.reply(ctx, chatID, d.history.RenderFor(ctx, md))
}

func (d *Dispatcher) cmdDate(ctx context.Context, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		d.reply(ctx, msg.Chat.ID, "🤦‍♂️ A date is needed, day and month. For example: /date 22-01 or /date 22:01")
		return
	}

	md, err := dates.ResolveExplicitDate(arg)
	switch {
	case errors.Is(err, model.ErrParse):
		d.reply(ctx, msg.Chat.ID, "🤦‍♂️ I couldn't read that date. It should look like DD-MM or DD:MM.")
		return
	case errors.Is(err, model.ErrInvalidDate):
		d.reply(ctx, msg.Chat.ID, "🤦‍♂️ That date doesn't seem possible. It should be DD:MM, for example: /date 22-01")
		return
	case err != nil:
		d.logger.Errorw("resolve explicit date", "arg", arg, "err", err)
		d.reply(ctx, msg.Chat.ID, "Something went wrong, please try again.")
		return
	}

	d.reply(ctx, msg.Chat.ID, d.history.RenderFor(ctx, md))
}

func (d *Dispatcher) cmdDaily(ctx context.Context, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		d.reply(ctx, msg.Chat.ID, "🤦‍♂️ A time is needed. For example: /daily 19:28")
		return
	}

	hour, minute, err := dates.ResolveTimeOfDay(arg)
	if err != nil {
		d.reply(ctx, msg.Chat.ID, "🤦‍♂️ I couldn't read that time. It should be HH:MM (24-hour).")
		return
	}

	next, err := d.scheduler.Schedule(msg.Chat.ID, hour, minute, func(recipientID int64) {
		d.notifier.SendDaily(context.Background(), recipientID)
	})
	if err != nil {
		d.logger.Errorw("schedule daily notification", "recipient", msg.Chat.ID, "err", err)
		d.reply(ctx, msg.Chat.ID, "Something went wrong, please try again.")
		return
	}

	// Confirm with the effective schedule, not the raw input.
	next = next.In(d.loc)
	d.reply(ctx, msg.Chat.ID, fmt.Sprintf(
		"💪🤖👍 I'll send the day's events every day at %s. The first one comes on %s.",
		next.Format("15:04"), next.Format("02-01-2006"),
	))
}

func (d *Dispatcher) cmdDailyOff(ctx context.Context, msg *tgbotapi.Message) {
	if !d.scheduler.Scheduled(msg.Chat.ID) {
		d.reply(ctx, msg.Chat.ID, "Automatic sending isn't turned on for this chat.")
		return
	}

	d.scheduler.Cancel(msg.Chat.ID)
	d.reply(ctx, msg.Chat.ID, "Okay, I'll stop sending the day's events automatically.")
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string) {
	if err := d.sender.Send(ctx, chatID, text); err != nil {
		d.logger.Errorw("failed to send reply", "chat", chatID, "err", err)
	}
}
