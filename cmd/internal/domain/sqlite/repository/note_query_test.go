package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	start := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)
	end := time.Date(2024, 3, 12, 8, 0, 0, 0, time.Local)

	from, to, err := DayRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local).UnixMilli(), from)
	assert.Equal(t, time.Date(2024, 3, 12, 23, 59, 59, int(999*time.Millisecond), time.Local).UnixMilli(), to)
}

func TestDayRangeSameDay(t *testing.T) {
	day := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	from, to, err := DayRange(day, day)
	require.NoError(t, err)
	assert.Equal(t, int64(24*time.Hour/time.Millisecond)-1, to-from)
}

func TestDayRangeErrors(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	_, _, err := DayRange(time.Time{}, day)
	assert.ErrorIs(t, err, ErrMissingDateBound)

	_, _, err = DayRange(day, time.Time{})
	assert.ErrorIs(t, err, ErrMissingDateBound)

	_, _, err = DayRange(day.AddDate(0, 0, 1), day)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Compared before widening, so the same day later in time still fails
	_, _, err = DayRange(day.Add(time.Hour), day)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNoteQueryWithTags(t *testing.T) {
	q := NewNoteQuery(1).WithTags([]string{"go", "", "rust", "go"})
	assert.Equal(t, []string{"go", "rust"}, q.Tags())
	assert.Equal(t, int64(1), q.OwnerID())
}
