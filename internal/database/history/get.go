package history

import (
	"context"
	"fmt"

	"github.com/chronist/daybook/internal/database"
	"github.com/chronist/daybook/internal/model"
)

// GetAllEvents returns the whole catalog in its stored order.
func (*Repository) GetAllEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.OrderBy("original_date", "header")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
