// Package dates turns user-supplied day/month and time-of-day strings into
// validated calendar values.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chronist/daybook/internal/model"
)

var timeOfDayRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ResolveExplicitDate parses "DD:MM" or "DD-MM" into a MonthDay. Non-numeric
// input fails with ErrParse; a combination that cannot form a real calendar
// date fails with ErrInvalidDate.
func ResolveExplicitDate(raw string) (model.MonthDay, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ":", "-")

	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return model.MonthDay{}, fmt.Errorf("%w: expected DD:MM or DD-MM, got %q", model.ErrParse, raw)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.MonthDay{}, fmt.Errorf("%w: day %q is not a number", model.ErrParse, parts[0])
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.MonthDay{}, fmt.Errorf("%w: month %q is not a number", model.ErrParse, parts[1])
	}

	return model.NewMonthDay(month, day)
}

// ResolveRelativeDate returns the MonthDay offsetDays away from now, with
// standard calendar rollover across month and year boundaries.
func ResolveRelativeDate(now time.Time, offsetDays int) model.MonthDay {
	return model.MonthDayOf(now.AddDate(0, 0, offsetDays))
}

// ResolveTimeOfDay parses a 24-hour "HH:MM" string. Anything outside
// 00:00-23:59 fails with ErrParse.
func ResolveTimeOfDay(raw string) (hour, minute int, err error) {
	m := timeOfDayRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: expected HH:MM (24-hour), got %q", model.ErrParse, raw)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	return hour, minute, nil
}
