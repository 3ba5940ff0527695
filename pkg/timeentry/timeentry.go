package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is a logged piece of work, joined with the display fields of its project, customer and time code.
// Exactly one duration family is set: Hours, or both StartTime and EndTime.
type TimeEntry struct {
	Id                  int
	ProjectId           int
	ProjectNumber       string
	ProjectName         string
	ExcludeFromInvoice  bool
	CustomerId          int
	CustomerName        string
	TimeCodeId          int
	TimeCode            int
	TimeCodeDescription string
	// Date is a calendar day stored as UTC midnight.
	Date  time.Time
	Hours decimal.NullDecimal
	// StartTime and EndTime are offsets from midnight.
	StartTime    *time.Duration
	EndTime      *time.Duration
	Description  string
	IsOnSite     bool
	TravelHours  decimal.NullDecimal
	TravelKm     decimal.NullDecimal
	CreatedDate  time.Time
	ModifiedDate *time.Time
}

// Filter narrows a time entry fetch. Zero values mean unbounded dates and any project or customer.
type Filter struct {
	From       time.Time
	To         time.Time
	ProjectId  int
	CustomerId int
}

// Matches applies the filter to an already fetched entry. Dates are inclusive.
func (f Filter) Matches(entry TimeEntry) bool {
	if !f.From.IsZero() && entry.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && entry.Date.After(f.To) {
		return false
	}
	if f.ProjectId != 0 && entry.ProjectId != f.ProjectId {
		return false
	}
	if f.CustomerId != 0 && entry.CustomerId != f.CustomerId {
		return false
	}
	return true
}
