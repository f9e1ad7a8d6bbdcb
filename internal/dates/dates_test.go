package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronist/daybook/internal/model"
)

func TestResolveExplicitDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    model.MonthDay
		wantErr error
	}{
		{name: "colon separator", raw: "22:01", want: model.MonthDay{Month: time.January, Day: 22}},
		{name: "dash separator", raw: "22-01", want: model.MonthDay{Month: time.January, Day: 22}},
		{name: "surrounding whitespace", raw: " 8:03 ", want: model.MonthDay{Month: time.March, Day: 8}},
		{name: "february 30th", raw: "30:02", wantErr: model.ErrInvalidDate},
		{name: "february 29th", raw: "29:02", wantErr: model.ErrInvalidDate},
		{name: "month 13", raw: "01:13", wantErr: model.ErrInvalidDate},
		{name: "day zero", raw: "0:05", wantErr: model.ErrInvalidDate},
		{name: "non-numeric day", raw: "ab:02", wantErr: model.ErrParse},
		{name: "non-numeric month", raw: "02:xy", wantErr: model.ErrParse},
		{name: "missing separator", raw: "2201", wantErr: model.ErrParse},
		{name: "too many parts", raw: "22:01:05", wantErr: model.ErrParse},
		{name: "empty", raw: "", wantErr: model.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveExplicitDate(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveExplicitDateMatchesStoredEvent(t *testing.T) {
	// Lookup keys must be year-independent: an event stored in any year
	// yields the same MonthDay as the explicit query.
	event := &model.Event{Date: time.Date(1999, time.March, 8, 0, 0, 0, 0, time.UTC)}

	md, err := ResolveExplicitDate("08:03")
	require.NoError(t, err)
	assert.Equal(t, event.MonthDay(), md)
}

func TestResolveRelativeDate(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		offset int
		want   model.MonthDay
	}{
		{
			name:   "today",
			now:    time.Date(2022, time.July, 14, 10, 0, 0, 0, time.UTC),
			offset: 0,
			want:   model.MonthDay{Month: time.July, Day: 14},
		},
		{
			name:   "yesterday across month boundary",
			now:    time.Date(2022, time.March, 1, 10, 0, 0, 0, time.UTC),
			offset: -1,
			want:   model.MonthDay{Month: time.February, Day: 28},
		},
		{
			name:   "yesterday in a leap year",
			now:    time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
			offset: -1,
			want:   model.MonthDay{Month: time.February, Day: 29},
		},
		{
			name:   "tomorrow across year boundary",
			now:    time.Date(2022, time.December, 31, 23, 0, 0, 0, time.UTC),
			offset: 1,
			want:   model.MonthDay{Month: time.January, Day: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRelativeDate(tt.now, tt.offset))
		})
	}
}

func TestResolveTimeOfDay(t *testing.T) {
	tests := []struct {
		raw     string
		hour    int
		minute  int
		wantErr bool
	}{
		{raw: "00:00", hour: 0, minute: 0},
		{raw: "23:59", hour: 23, minute: 59},
		{raw: "9:05", hour: 9, minute: 5},
		{raw: "19:28", hour: 19, minute: 28},
		{raw: "24:00", wantErr: true},
		{raw: "19:60", wantErr: true},
		{raw: "7:5", wantErr: true},
		{raw: "noon", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			hour, minute, err := ResolveTimeOfDay(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrParse))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}
