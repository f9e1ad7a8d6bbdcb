package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chronist/daybook/internal/model"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, NoEventsMessage, Render(nil))
	assert.Equal(t, NoEventsMessage, Render([]*model.Event{}))
}

func TestRenderSingleEvent(t *testing.T) {
	events := []*model.Event{
		{
			Date:        time.Date(2020, time.July, 14, 0, 0, 0, 0, time.UTC),
			Header:      "Storming of the Bastille",
			Description: "The French Revolution begins in earnest.",
		},
	}

	got := Render(events)

	assert.Equal(t, "*Storming of the Bastille*\n_14-07-2020_\n\nThe French Revolution begins in earnest.", got)
}

func TestRenderMultipleEventsSeparatedByBlankLine(t *testing.T) {
	events := []*model.Event{
		{
			Date:        time.Date(1999, time.March, 8, 0, 0, 0, 0, time.UTC),
			Header:      "First",
			Description: "first body",
		},
		{
			Date:        time.Date(1950, time.March, 8, 0, 0, 0, 0, time.UTC),
			Header:      "Second",
			Description: "second body",
		},
	}

	got := Render(events)

	assert.Contains(t, got, "*First*\n_08-03-1999_\n\nfirst body")
	assert.Contains(t, got, "*Second*\n_08-03-1950_\n\nsecond body")
	// Original stored year is preserved for display even though matching
	// ignores it.
	assert.Equal(t,
		"*First*\n_08-03-1999_\n\nfirst body\n\n*Second*\n_08-03-1950_\n\nsecond body",
		got,
	)
}
