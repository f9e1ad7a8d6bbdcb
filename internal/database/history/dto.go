package history

import (
	"time"

	"github.com/chronist/daybook/internal/model"
)

type eventDTO struct {
	OriginalDate time.Time `db:"original_date"`
	Header       string    `db:"header"`
	Description  string    `db:"description"`
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		Date:        dto.OriginalDate,
		Header:      dto.Header,
		Description: dto.Description,
	}
}
