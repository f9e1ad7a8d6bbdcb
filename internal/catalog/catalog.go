package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/model"
)

// Source yields the full set of dated events from a backing resource.
type Source interface {
	Load(ctx context.Context) ([]*model.Event, error)
}

// Catalog holds an immutable in-memory snapshot of the event set. Lookups
// never touch the backing source; Reload swaps the whole snapshot atomically.
type Catalog struct {
	logger *zap.SugaredLogger
	source Source

	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	events []*model.Event
	byDay  map[model.MonthDay][]*model.Event
}

// New returns a catalog with an empty snapshot. Call Reload to populate it;
// a failed load leaves the catalog usable and empty.
func New(logger *zap.SugaredLogger, source Source) *Catalog {
	return &Catalog{
		logger: logger,
		source: source,
		snap:   buildSnapshot(nil),
	}
}

// Reload loads the full event set from the source and replaces the snapshot.
// On error the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	events, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	snap := buildSnapshot(events)

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.logger.Infow("catalog reloaded", "events", len(events))
	return nil
}

// EventsOn returns all events matching the given month and day, in the
// catalog's stored order. The year of the stored events is ignored.
func (c *Catalog) EventsOn(md model.MonthDay) []*model.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snap.byDay[md]
}

// Size reports the number of loaded events.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.snap.events)
}

func buildSnapshot(events []*model.Event) *snapshot {
	byDay := make(map[model.MonthDay][]*model.Event)
	for _, e := range events {
		md := e.MonthDay()
		byDay[md] = append(byDay[md], e)
	}

	return &snapshot{
		events: events,
		byDay:  byDay,
	}
}
