package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// ComputeHours returns the effective hours of an entry: the explicit hours when set, otherwise
// the span between start and end time. A start after the end yields a negative value.
func ComputeHours(entry TimeEntry) decimal.Decimal {
	if entry.Hours.Valid {
		return entry.Hours.Decimal
	}
	if entry.StartTime != nil && entry.EndTime != nil {
		span := *entry.EndTime - *entry.StartTime
		if span < 0 {
			log.Warnf("time entry %d ends before it starts (%s - %s)", entry.Id, FormatTimeOfDay(entry.StartTime), FormatTimeOfDay(entry.EndTime))
		}
		return DurationToHours(span)
	}
	return decimal.Zero
}

// DurationToHours expresses d in fractional hours.
func DurationToHours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d)).Div(nanosPerHour)
}

// OrZero unwraps an optional decimal, treating a missing value as zero.
func OrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// FormatTimeOfDay renders an offset from midnight as HH:MM, or "" when absent.
func FormatTimeOfDay(d *time.Duration) string {
	if d == nil {
		return ""
	}
	return time.Time{}.Add(*d).Format("15:04")
}
