package notifications

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/dates"
	"github.com/chronist/daybook/internal/model"
)

// Notifier runs the fire path of a scheduled notification: recompute "today"
// at firing time, look the day up and deliver the rendered text. Delivery
// failures are logged and swallowed so the recurring schedule stays intact.
type Notifier struct {
	logger    *zap.SugaredLogger
	history   historyService
	messenger messenger
	loc       *time.Location
}

type historyService interface {
	RenderFor(ctx context.Context, md model.MonthDay) string
}

type messenger interface {
	Send(ctx context.Context, recipientID int64, text string) error
}

func NewNotifier(logger *zap.SugaredLogger, history historyService, messenger messenger, loc *time.Location) *Notifier {
	return &Notifier{
		logger:    logger,
		history:   history,
		messenger: messenger,
		loc:       loc,
	}
}

// SendDaily delivers the current day's events to the recipient. The date is
// derived at call time, not at scheduling time.
func (n *Notifier) SendDaily(ctx context.Context, recipientID int64) {
	md := dates.ResolveRelativeDate(time.Now().In(n.loc), 0)
	text := n.history.RenderFor(ctx, md)

	if err := n.messenger.Send(ctx, recipientID, text); err != nil {
		n.logger.Errorw("failed to deliver scheduled events", "recipient", recipientID, "date", md, "err", err)
		return
	}

	n.logger.Infow("scheduled events delivered", "recipient", recipientID, "date", md)
}
