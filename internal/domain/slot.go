package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedSlot is returned when a time range has no separator.
var ErrMalformedSlot = errors.New("time range must look like H:MM–H:MM")

// Slot is a parsed "H:MM–H:MM" range, as clock times without a date.
type Slot struct {
	StartHour, StartMinute int
	EndHour, EndMinute     int
}

// ParseSlot splits a range on its first hyphen (en and em dashes count as
// hyphens) and parses both sides as 24h clock times. Hours and minutes may
// each have one or two digits.
func ParseSlot(timeRange string) (Slot, error) {
	normalized := dashReplacer.Replace(timeRange)
	idx := strings.IndexByte(normalized, '-')
	if idx < 0 {
		return Slot{}, ErrMalformedSlot
	}

	start, err := parseClock(normalized[:idx])
	if err != nil {
		return Slot{}, fmt.Errorf("slot start: %w", err)
	}
	end, err := parseClock(normalized[idx+1:])
	if err != nil {
		return Slot{}, fmt.Errorf("slot end: %w", err)
	}

	return Slot{
		StartHour:   start.Hour(),
		StartMinute: start.Minute(),
		EndHour:     end.Hour(),
		EndMinute:   end.Minute(),
	}, nil
}

func parseClock(s string) (time.Time, error) {
	return time.Parse("15:4", strings.TrimSpace(s))
}

// On anchors the slot to the calendar day of day, in day's location.
func (s Slot) On(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	start = time.Date(y, m, d, s.StartHour, s.StartMinute, 0, 0, loc)
	end = time.Date(y, m, d, s.EndHour, s.EndMinute, 0, 0, loc)
	return start, end
}

// Contains reports start <= now <= end on now's calendar day. Both ends are
// inclusive. A range whose end is before its start (crossing midnight) never
// contains anything.
func (s Slot) Contains(now time.Time) bool {
	start, end := s.On(now)
	return !now.Before(start) && !now.After(end)
}

// String formats the slot as HH:MM-HH:MM.
func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
}

// InSlot reports whether now falls inside timeRange. Highlighting is cosmetic:
// a range that cannot be parsed is simply never current.
func InSlot(timeRange string, now time.Time) bool {
	slot, err := ParseSlot(timeRange)
	if err != nil {
		return false
	}
	return slot.Contains(now)
}

// CurrentIndex returns the index of the first state whose range contains now,
// or -1.
func CurrentIndex(states []TaskState, now time.Time) int {
	for i, s := range states {
		if InSlot(s.Time, now) {
			return i
		}
	}
	return -1
}
