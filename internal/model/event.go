package model

import (
	"fmt"
	"time"
)

// Event is a single catalog entry. The stored date keeps its original year
// for display, but lookups only ever match on month and day.
type Event struct {
	Date        time.Time
	Header      string
	Description string
}

func (e *Event) MonthDay() MonthDay {
	return MonthDayOf(e.Date)
}

// MonthDay is the year-agnostic lookup key for the catalog.
type MonthDay struct {
	Month time.Month
	Day   int
}

// monthDayRefYear is a non-leap year, so February 29 is rejected as an
// explicit query date even though stored events may carry leap dates.
const monthDayRefYear = 2023

// NewMonthDay validates month and day jointly, e.g. day 30 is rejected for
// month 2.
func NewMonthDay(month, day int) (MonthDay, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return MonthDay{}, fmt.Errorf("%w: %02d-%02d", ErrInvalidDate, day, month)
	}

	t := time.Date(monthDayRefYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return MonthDay{}, fmt.Errorf("%w: %02d-%02d", ErrInvalidDate, day, month)
	}

	return MonthDay{Month: time.Month(month), Day: day}, nil
}

func MonthDayOf(t time.Time) MonthDay {
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}
