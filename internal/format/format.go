// Package format renders matched events into a single reply text.
package format

import (
	"fmt"
	"strings"

	"github.com/chronist/daybook/internal/model"
)

// NoEventsMessage is the fixed reply for dates with no recorded events.
const NoEventsMessage = "🤐 No recorded events for this date."

const displayDateLayout = "02-01-2006"

// Render joins the events into one Markdown block, one entry per event
// separated by a blank line. The stored year is shown as-is.
func Render(events []*model.Event) string {
	if len(events) == 0 {
		return NoEventsMessage
	}

	entries := make([]string, len(events))
	for i, e := range events {
		entries[i] = fmt.Sprintf("*%s*\n_%s_\n\n%s", e.Header, e.Date.Format(displayDateLayout), e.Description)
	}

	return strings.Join(entries, "\n\n")
}
