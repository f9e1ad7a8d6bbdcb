package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/format"
	"github.com/chronist/daybook/internal/model"
)

type catalogStub struct {
	events map[model.MonthDay][]*model.Event
	calls  int
}

func (c *catalogStub) EventsOn(md model.MonthDay) []*model.Event {
	c.calls++
	return c.events[md]
}

type cacheStub struct {
	entries map[model.MonthDay]string
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func (c *cacheStub) Get(_ context.Context, md model.MonthDay) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	text, ok := c.entries[md]
	return text, ok, nil
}

func (c *cacheStub) Set(_ context.Context, md model.MonthDay, text string, ttl time.Duration) error {
	c.lastTTL = ttl
	if c.setErr != nil {
		return c.setErr
	}
	if c.entries == nil {
		c.entries = map[model.MonthDay]string{}
	}
	c.entries[md] = text
	return nil
}

var july14 = model.MonthDay{Month: time.July, Day: 14}

func testEvents() map[model.MonthDay][]*model.Event {
	return map[model.MonthDay][]*model.Event{
		july14: {
			{
				Date:        time.Date(2020, time.July, 14, 0, 0, 0, 0, time.UTC),
				Header:      "Bastille",
				Description: "d",
			},
		},
	}
}

func TestRenderForWithoutCache(t *testing.T) {
	cat := &catalogStub{events: testEvents()}
	s := NewService(zap.NewNop().Sugar(), cat, nil, time.UTC)

	got := s.RenderFor(context.Background(), july14)
	assert.Contains(t, got, "Bastille")

	none := s.RenderFor(context.Background(), model.MonthDay{Month: time.July, Day: 15})
	assert.Equal(t, format.NoEventsMessage, none)
}

func TestRenderForPopulatesAndUsesCache(t *testing.T) {
	cat := &catalogStub{events: testEvents()}
	cache := &cacheStub{}
	s := NewService(zap.NewNop().Sugar(), cat, cache, time.UTC)

	first := s.RenderFor(context.Background(), july14)
	require.Equal(t, 1, cat.calls)
	assert.Positive(t, cache.lastTTL)
	assert.True(t, cache.lastTTL <= 24*time.Hour)

	second := s.RenderFor(context.Background(), july14)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cat.calls, "cache hit must not touch the catalog")
}

func TestRenderForTreatsCacheErrorsAsMiss(t *testing.T) {
	cat := &catalogStub{events: testEvents()}
	cache := &cacheStub{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	s := NewService(zap.NewNop().Sugar(), cat, cache, time.UTC)

	got := s.RenderFor(context.Background(), july14)
	assert.Contains(t, got, "Bastille")
	assert.Equal(t, 1, cat.calls)
}
