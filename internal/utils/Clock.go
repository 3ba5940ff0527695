package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// Today returns the clock's current calendar day as a UTC midnight value, which is
// how calendar dates are read from the store.
func Today(clock Clock) time.Time {
	return DateOf(clock.Now())
}

// DateOf drops the time-of-day part of t, keeping its calendar day.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts a calendar day by months, clamping to the last day of the target
// month instead of rolling over (Aug 31 - 6 months is Feb 28, not Mar 3).
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
