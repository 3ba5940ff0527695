package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/pkg/grouping"
	"github.com/timelogger/timelogger/pkg/project"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

// PeriodLayout labels monthly reports, e.g. "March 2026".
const PeriodLayout = "January 2006"

type CustomerMonthRow struct {
	CustomerId int
	Customer   string
	Period     string
	grouping.Totals
}

type ProjectMonthRow struct {
	ProjectId     int
	Customer      string
	ProjectNumber string
	ProjectName   string
	Period        string
	grouping.Totals
}

type CustomerActivityRow struct {
	CustomerId int
	Customer   string
	grouping.Totals
}

type ProjectStatusRow struct {
	ProjectId     int
	Customer      string
	ProjectNumber string
	ProjectName   string
	Active        bool
	grouping.Totals
	// LastActivity and DaysSinceLastEntry are nil for projects without entries.
	LastActivity       *time.Time
	DaysSinceLastEntry *int
}

type YearToDateSummary struct {
	Year int
	grouping.Totals
	AvgHoursPerEntry decimal.Decimal
}

type MonthlyComparisonRow struct {
	// YearMonth is formatted as YYYY-MM.
	YearMonth string
	grouping.Totals
}

// MonthRange returns the first and last calendar day of the month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func MonthlyByCustomer(entries []timeentry.TimeEntry, periodStart time.Time) []CustomerMonthRow {
	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.CustomerId })
	rows := make([]CustomerMonthRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, CustomerMonthRow{
			CustomerId: g.Key,
			Customer:   g.Items[0].CustomerName,
			Period:     periodStart.Format(PeriodLayout),
			Totals:     grouping.Summarize(g.Items),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours.GreaterThan(rows[j].TotalHours)
	})
	return rows
}

func MonthlyByProject(entries []timeentry.TimeEntry, periodStart time.Time) []ProjectMonthRow {
	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.ProjectId })
	rows := make([]ProjectMonthRow, 0, len(groups))
	for _, g := range groups {
		first := g.Items[0]
		rows = append(rows, ProjectMonthRow{
			ProjectId:     g.Key,
			Customer:      first.CustomerName,
			ProjectNumber: first.ProjectNumber,
			ProjectName:   first.ProjectName,
			Period:        periodStart.Format(PeriodLayout),
			Totals:        grouping.Summarize(g.Items),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Customer != rows[j].Customer {
			return rows[i].Customer < rows[j].Customer
		}
		return rows[i].ProjectNumber < rows[j].ProjectNumber
	})
	return rows
}

// InvoicePreparation lists entries by customer, project number and date.
func InvoicePreparation(entries []timeentry.TimeEntry) []timeentry.TimeEntry {
	sorted := append([]timeentry.TimeEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		if a.ProjectNumber != b.ProjectNumber {
			return a.ProjectNumber < b.ProjectNumber
		}
		return a.Date.Before(b.Date)
	})
	return sorted
}

// WeeklyTimesheet lists entries by date, customer and project number.
func WeeklyTimesheet(entries []timeentry.TimeEntry) []timeentry.TimeEntry {
	sorted := append([]timeentry.TimeEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		return a.ProjectNumber < b.ProjectNumber
	})
	return sorted
}

func CustomerActivity(entries []timeentry.TimeEntry) []CustomerActivityRow {
	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.CustomerId })
	rows := make([]CustomerActivityRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, CustomerActivityRow{
			CustomerId: g.Key,
			Customer:   g.Items[0].CustomerName,
			Totals:     grouping.Summarize(g.Items),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalHours.GreaterThan(rows[j].TotalHours)
	})
	return rows
}

// ProjectStatus reports every given project, including those without entries.
// Rows are ordered by last activity, most recent first, projects without activity last.
func ProjectStatus(projects []project.Project, entries []timeentry.TimeEntry, today time.Time) []ProjectStatusRow {
	byProject := make(map[int][]timeentry.TimeEntry)
	for _, g := range grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.ProjectId }) {
		byProject[g.Key] = g.Items
	}

	rows := make([]ProjectStatusRow, 0, len(projects))
	for _, p := range projects {
		row := ProjectStatusRow{
			ProjectId:     p.Id,
			Customer:      p.CustomerName,
			ProjectNumber: p.ProjectNumber,
			ProjectName:   p.Name,
			Active:        p.IsActive,
			Totals:        grouping.Summarize(byProject[p.Id]),
		}
		if row.Entries > 0 {
			last := row.LastDate
			days := int(today.Sub(last).Hours() / 24)
			row.LastActivity = &last
			row.DaysSinceLastEntry = &days
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].LastActivity, rows[j].LastActivity
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return rows
}

func YearToDate(year int, entries []timeentry.TimeEntry) YearToDateSummary {
	summary := YearToDateSummary{
		Year:             year,
		Totals:           grouping.Summarize(entries),
		AvgHoursPerEntry: decimal.Zero,
	}
	if summary.Entries > 0 {
		summary.AvgHoursPerEntry = summary.TotalHours.Div(decimal.NewFromInt(int64(summary.Entries)))
	}
	return summary
}

type yearMonth struct {
	year  int
	month time.Month
}

func MonthlyComparison(entries []timeentry.TimeEntry) []MonthlyComparisonRow {
	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) yearMonth {
		return yearMonth{e.Date.Year(), e.Date.Month()}
	})
	rows := make([]MonthlyComparisonRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, MonthlyComparisonRow{
			YearMonth: fmt.Sprintf("%d-%02d", g.Key.year, g.Key.month),
			Totals:    grouping.Summarize(g.Items),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].YearMonth > rows[j].YearMonth
	})
	return rows
}
