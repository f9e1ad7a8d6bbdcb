package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/model"
)

type historyStub struct {
	lastKey model.MonthDay
	text    string
}

func (h *historyStub) RenderFor(_ context.Context, md model.MonthDay) string {
	h.lastKey = md
	return h.text
}

type messengerStub struct {
	sent map[int64][]string
	err  error
}

func (m *messengerStub) Send(_ context.Context, recipientID int64, text string) error {
	if m.err != nil {
		return m.err
	}
	if m.sent == nil {
		m.sent = map[int64][]string{}
	}
	m.sent[recipientID] = append(m.sent[recipientID], text)
	return nil
}

func TestSendDailyUsesCurrentDate(t *testing.T) {
	history := &historyStub{text: "today's events"}
	msgr := &messengerStub{}

	n := NewNotifier(zap.NewNop().Sugar(), history, msgr, time.UTC)
	n.SendDaily(context.Background(), 5)

	assert.Equal(t, model.MonthDayOf(time.Now().UTC()), history.lastKey)
	require.Len(t, msgr.sent[5], 1)
	assert.Equal(t, "today's events", msgr.sent[5][0])
}

func TestSendDailySwallowsDeliveryFailure(t *testing.T) {
	history := &historyStub{text: "today's events"}
	msgr := &messengerStub{err: errors.New("transport down")}

	n := NewNotifier(zap.NewNop().Sugar(), history, msgr, time.UTC)

	// Must not panic or propagate; the recurring schedule is unaffected.
	n.SendDaily(context.Background(), 5)

	msgr.err = nil
	n.SendDaily(context.Background(), 5)
	assert.Len(t, msgr.sent[5], 1)
}
