package history

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chronist/daybook/internal/format"
	"github.com/chronist/daybook/internal/model"
)

// Service answers "what happened on this day" queries over the catalog,
// with an optional cache of rendered replies in front of the formatter.
type Service struct {
	logger  *zap.SugaredLogger
	catalog eventCatalog
	cache   Cache
	loc     *time.Location
}

type eventCatalog interface {
	EventsOn(md model.MonthDay) []*model.Event
}

// Cache stores rendered reply texts keyed by month-day. A nil Cache disables
// caching; cache errors are treated as misses and never surface to callers.
type Cache interface {
	Get(ctx context.Context, md model.MonthDay) (string, bool, error)
	Set(ctx context.Context, md model.MonthDay, text string, ttl time.Duration) error
}

func NewService(logger *zap.SugaredLogger, catalog eventCatalog, cache Cache, loc *time.Location) *Service {
	return &Service{
		logger:  logger,
		catalog: catalog,
		cache:   cache,
		loc:     loc,
	}
}

// RenderFor returns the reply text for the given month-day, either from the
// cache or freshly rendered from the catalog snapshot.
func (s *Service) RenderFor(ctx context.Context, md model.MonthDay) string {
	if s.cache != nil {
		text, ok, err := s.cache.Get(ctx, md)
		switch {
		case err != nil:
			s.logger.Debugw("rendered cache get failed", "key", md, "err", err)
		case ok:
			return text
		}
	}

	text := format.Render(s.catalog.EventsOn(md))

	if s.cache != nil {
		// Entries expire at local midnight so a reloaded catalog is
		// visible from the next day at the latest.
		if err := s.cache.Set(ctx, md, text, s.untilMidnight(time.Now().In(s.loc))); err != nil {
			s.logger.Debugw("rendered cache set failed", "key", md, "err", err)
		}
	}

	return text
}

func (s *Service) untilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
