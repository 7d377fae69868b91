//go:build unit

package slot_test

import (
	"testing"
	"time"

	"quality-detailing/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := slot.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, slot.TimeOfDay{Hour: 9, Minute: 30}, tod)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"9:30am", "25:00", "09:61", ""} {
			_, err := slot.ParseTimeOfDay(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestRangeDays(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		days, err := slot.RangeDays(date(2026, 9, 1), date(2026, 9, 1))
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, date(2026, 9, 1), days[0])
	})

	t.Run("five days inclusive", func(t *testing.T) {
		days, err := slot.RangeDays(date(2026, 9, 1), date(2026, 9, 5))
		require.NoError(t, err)
		require.Len(t, days, 5)
		assert.Equal(t, date(2026, 9, 1), days[0])
		assert.Equal(t, date(2026, 9, 5), days[4])
	})

	t.Run("timestamps normalize to midnight", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 9, 3, 0, 1, 0, 0, time.UTC)
		days, err := slot.RangeDays(start, end)
		require.NoError(t, err)
		require.Len(t, days, 3)
		for _, d := range days {
			assert.Equal(t, 0, d.Hour())
			assert.Equal(t, 0, d.Minute())
		}
	})

	t.Run("maximum range accepted", func(t *testing.T) {
		days, err := slot.RangeDays(date(2026, 9, 1), date(2026, 9, 1).AddDate(0, 0, slot.MaxRangeDays-1))
		require.NoError(t, err)
		assert.Len(t, days, slot.MaxRangeDays)
	})

	t.Run("range too large rejected before any day is produced", func(t *testing.T) {
		days, err := slot.RangeDays(date(2026, 9, 1), date(2026, 9, 1).AddDate(0, 0, slot.MaxRangeDays))
		require.ErrorIs(t, err, slot.ErrRangeTooLarge)
		assert.Nil(t, days)
	})

	t.Run("ceiling holds across a DST transition", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// 2026-03-08 is spring-forward, so this 32-day window is an hour
		// short of 32*24h. It must still count as 32 days and be rejected.
		start := time.Date(2026, 2, 15, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 0, slot.MaxRangeDays)
		days, err := slot.RangeDays(start, end)
		require.ErrorIs(t, err, slot.ErrRangeTooLarge)
		assert.Nil(t, days)

		days, err = slot.RangeDays(start, start.AddDate(0, 0, slot.MaxRangeDays-1))
		require.NoError(t, err)
		assert.Len(t, days, slot.MaxRangeDays)
	})

	t.Run("reversed range rejected", func(t *testing.T) {
		days, err := slot.RangeDays(date(2026, 9, 5), date(2026, 9, 1))
		require.ErrorIs(t, err, slot.ErrRangeReversed)
		assert.Nil(t, days)
	})
}

func TestNewDaySlot(t *testing.T) {
	day := date(2026, 9, 10)

	t.Run("open ended day slot", func(t *testing.T) {
		s, err := slot.NewDaySlot(day, slot.TimeOfDay{Hour: 9}, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC), s.Start())
		assert.True(t, s.IsOpenEnded())
	})

	t.Run("bounded day slot", func(t *testing.T) {
		end := slot.TimeOfDay{Hour: 17, Minute: 30}
		s, err := slot.NewDaySlot(day, slot.TimeOfDay{Hour: 9}, &end)
		require.NoError(t, err)
		require.NotNil(t, s.End())
		assert.Equal(t, time.Date(2026, 9, 10, 17, 30, 0, 0, time.UTC), *s.End())
	})

	t.Run("end at or before start names the day", func(t *testing.T) {
		end := slot.TimeOfDay{Hour: 9}
		s, err := slot.NewDaySlot(day, slot.TimeOfDay{Hour: 9}, &end)
		require.Nil(t, s)
		require.ErrorIs(t, err, slot.ErrEndNotAfterStart)
		assert.Contains(t, err.Error(), "2026-09-10")
	})
}

func TestRangeExpansion(t *testing.T) {
	// The shape of the full expansion: five days at 09:00 with no end time
	// yields five open ended slots, one per day.
	days, err := slot.RangeDays(date(2026, 9, 1), date(2026, 9, 5))
	require.NoError(t, err)

	start := slot.TimeOfDay{Hour: 9}
	for i, day := range days {
		s, err := slot.NewDaySlot(day, start, nil)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 9, 1+i).Add(9*time.Hour), s.Start())
		assert.True(t, s.IsOpenEnded())
	}
}
