package grouping

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

// Totals aggregates a set of entries. RegularHours + OnSiteHours == TotalHours.
// FirstDate and LastDate are zero when there are no entries.
type Totals struct {
	Entries           int
	TotalHours        decimal.Decimal
	RegularHours      decimal.Decimal
	OnSiteHours       decimal.Decimal
	TravelHours       decimal.Decimal
	TravelKm          decimal.Decimal
	FirstDate         time.Time
	LastDate          time.Time
	DistinctDays      int
	DistinctProjects  int
	DistinctCustomers int
}

// Summarize computes Totals in a single pass over entries.
func Summarize(entries []timeentry.TimeEntry) Totals {
	totals := Totals{
		TotalHours:   decimal.Zero,
		RegularHours: decimal.Zero,
		OnSiteHours:  decimal.Zero,
		TravelHours:  decimal.Zero,
		TravelKm:     decimal.Zero,
	}
	days := make(map[time.Time]struct{})
	projects := make(map[int]struct{})
	customers := make(map[int]struct{})

	for _, entry := range entries {
		hours := timeentry.ComputeHours(entry)
		totals.Entries++
		totals.TotalHours = totals.TotalHours.Add(hours)
		if entry.IsOnSite {
			totals.OnSiteHours = totals.OnSiteHours.Add(hours)
		} else {
			totals.RegularHours = totals.RegularHours.Add(hours)
		}
		totals.TravelHours = totals.TravelHours.Add(timeentry.OrZero(entry.TravelHours))
		totals.TravelKm = totals.TravelKm.Add(timeentry.OrZero(entry.TravelKm))

		if totals.FirstDate.IsZero() || entry.Date.Before(totals.FirstDate) {
			totals.FirstDate = entry.Date
		}
		if entry.Date.After(totals.LastDate) {
			totals.LastDate = entry.Date
		}
		days[entry.Date] = struct{}{}
		projects[entry.ProjectId] = struct{}{}
		customers[entry.CustomerId] = struct{}{}
	}

	totals.DistinctDays = len(days)
	totals.DistinctProjects = len(projects)
	totals.DistinctCustomers = len(customers)
	return totals
}
