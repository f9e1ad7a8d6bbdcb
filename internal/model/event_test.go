package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthDay(t *testing.T) {
	md, err := NewMonthDay(2, 28)
	require.NoError(t, err)
	assert.Equal(t, MonthDay{Month: time.February, Day: 28}, md)

	for _, tt := range []struct{ month, day int }{
		{2, 30},
		{2, 29}, // validated against a non-leap reference year
		{4, 31},
		{0, 10},
		{13, 1},
		{6, 0},
		{6, 32},
	} {
		_, err := NewMonthDay(tt.month, tt.day)
		assert.True(t, errors.Is(err, ErrInvalidDate), "month=%d day=%d: %v", tt.month, tt.day, err)
	}
}

func TestMonthDayEqualityIgnoresYear(t *testing.T) {
	a := MonthDayOf(time.Date(1999, time.March, 8, 12, 30, 0, 0, time.UTC))
	b := MonthDayOf(time.Date(2035, time.March, 8, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, a, b)
	assert.Equal(t, "03-08", a.String())
}
