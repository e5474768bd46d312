package workoutlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30", ISOToday(now))
}

func TestDaysDiff(t *testing.T) {
	// a Sunday
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	diff, err := DaysDiff("2026-08-30", now)
	require.NoError(t, err)
	assert.Equal(t, 0, diff)

	diff, err = DaysDiff("2026-08-29", now)
	require.NoError(t, err)
	assert.Equal(t, 1, diff)

	diff, err = DaysDiff("2026-09-01", now)
	require.NoError(t, err)
	assert.Equal(t, -2, diff)

	_, err = DaysDiff("nope", now)
	require.Error(t, err)
}

func TestHumanDayLabel(t *testing.T) {
	// Sunday, 2026-08-30
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDayLabel("2026-08-30", now))
	assert.Equal(t, "Yesterday", HumanDayLabel("2026-08-29", now))

	// diff 2..6 render the weekday name
	assert.Equal(t, "Friday", HumanDayLabel("2026-08-28", now))
	assert.Equal(t, "Monday", HumanDayLabel("2026-08-24", now)) // diff 6

	// diff 7 and beyond render the full date
	assert.Equal(t, "August 23, 2026", HumanDayLabel("2026-08-23", now))
	assert.Equal(t, "January 5, 2026", HumanDayLabel("2026-01-05", now))

	// future dates fall in the weekday branch
	assert.Equal(t, "Tuesday", HumanDayLabel("2026-09-01", now))

	// unparseable keys render as-is
	assert.Equal(t, "sometime", HumanDayLabel("sometime", now))
}
