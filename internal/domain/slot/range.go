package slot

import (
	"errors"
	"fmt"
	"time"
)

// MaxRangeDays is the hard ceiling on day-range expansion. It exists to stop
// an admin typo from mass-creating months of slots in one request.
const MaxRangeDays = 31

var (
	ErrRangeReversed = errors.New("range end date must not be before start date")
	ErrRangeTooLarge = fmt.Errorf("range exceeds %d days", MaxRangeDays)
)

// TimeOfDay is a wall-clock time applied to every day of an expanded range.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// At anchors the time of day on the given calendar day.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Midnight normalizes a timestamp to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RangeDays enumerates every calendar day from startDate to endDate inclusive,
// both normalized to midnight. It rejects reversed ranges and ranges longer
// than MaxRangeDays before returning any day, so callers can fail before the
// first write.
func RangeDays(startDate, endDate time.Time) ([]time.Time, error) {
	start := Midnight(startDate)
	end := Midnight(endDate)
	if end.Before(start) {
		return nil, ErrRangeReversed
	}

	// Counting via Sub is wrong in zoned locations: a DST transition makes
	// one day 23 or 25 hours long. Stepping by AddDate counts calendar days.
	days := make([]time.Time, 0, MaxRangeDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if len(days) == MaxRangeDays {
			return nil, ErrRangeTooLarge
		}
		days = append(days, d)
	}
	return days, nil
}

// NewDaySlot builds the slot for one day of an expanded range. Validation is
// per day: an end time at or before the start time fails that day.
func NewDaySlot(day time.Time, startTime TimeOfDay, endTime *TimeOfDay) (*Slot, error) {
	start := startTime.At(day)
	var end *time.Time
	if endTime != nil {
		e := endTime.At(day)
		end = &e
	}
	s, err := NewSlot(start, end)
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", day.Format("2006-01-02"), err)
	}
	return s, nil
}
