package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("1990-05-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.May, d.Month())

	d, err = ParseISODate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseISODate("15/05/1990")
	assert.Error(t, err)
}

func TestDayRangeIsHalfOpen(t *testing.T) {
	at := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	start, end := DayRange(at)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, start.AddDate(0, 0, 1), end)
	assert.True(t, !at.Before(start) && at.Before(end))
}
