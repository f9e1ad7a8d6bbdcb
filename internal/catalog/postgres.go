package catalog

import (
	"context"
	"fmt"

	"github.com/chronist/daybook/internal/database"
	"github.com/chronist/daybook/internal/model"
)

// PostgresSource reads the catalog from the history_events table.
type PostgresSource struct {
	db     database.PGX
	events eventsRepository
}

type eventsRepository interface {
	GetAllEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
}

func NewPostgresSource(db database.PGX, events eventsRepository) *PostgresSource {
	return &PostgresSource{
		db:     db,
		events: events,
	}
}

// Ping reports whether the backing database is reachable.
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresSource) Load(ctx context.Context) ([]*model.Event, error) {
	events, err := s.events.GetAllEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetAllEvents: %w", err)
	}

	return events, nil
}
