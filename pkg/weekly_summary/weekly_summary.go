package weekly_summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/internal/utils"
	"github.com/timelogger/timelogger/pkg/grouping"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

const DaysInWeek = 7

type DailySummary struct {
	Date       time.Time
	Entries    []timeentry.TimeEntry
	DailyTotal decimal.Decimal
}

type ProjectTotal struct {
	ProjectId     int
	ProjectName   string
	ProjectNumber string
	CustomerName  string
	TotalHours    decimal.Decimal
}

type WeeklySummary struct {
	WeekStart     time.Time
	Days          []DailySummary
	ProjectTotals []ProjectTotal
	TotalHours    decimal.Decimal
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	day := utils.DateOf(date)
	delta := (int(day.Weekday()) - int(time.Monday) + DaysInWeek) % DaysInWeek
	return day.AddDate(0, 0, -delta)
}

// BuildWeeklySummary always returns seven day buckets for the Monday-based week containing
// anyDateInWeek. Entries outside that week are ignored.
func BuildWeeklySummary(anyDateInWeek time.Time, entries []timeentry.TimeEntry) WeeklySummary {
	weekStart := WeekStart(anyDateInWeek)
	summary := WeeklySummary{
		WeekStart:     weekStart,
		Days:          make([]DailySummary, DaysInWeek),
		ProjectTotals: make([]ProjectTotal, 0),
		TotalHours:    decimal.Zero,
	}
	for i := range summary.Days {
		summary.Days[i] = DailySummary{
			Date:       weekStart.AddDate(0, 0, i),
			Entries:    make([]timeentry.TimeEntry, 0),
			DailyTotal: decimal.Zero,
		}
	}

	inWeek := make([]timeentry.TimeEntry, 0, len(entries))
	for _, entry := range entries {
		offset := int(utils.DateOf(entry.Date).Sub(weekStart).Hours() / 24)
		if offset < 0 || offset >= DaysInWeek {
			continue
		}
		hours := timeentry.ComputeHours(entry)
		day := &summary.Days[offset]
		day.Entries = append(day.Entries, entry)
		day.DailyTotal = day.DailyTotal.Add(hours)
		summary.TotalHours = summary.TotalHours.Add(hours)
		inWeek = append(inWeek, entry)
	}

	for _, group := range grouping.GroupBy(inWeek, func(e timeentry.TimeEntry) int { return e.ProjectId }) {
		first := group.Items[0]
		summary.ProjectTotals = append(summary.ProjectTotals, ProjectTotal{
			ProjectId:     group.Key,
			ProjectName:   first.ProjectName,
			ProjectNumber: first.ProjectNumber,
			CustomerName:  first.CustomerName,
			TotalHours:    grouping.Summarize(group.Items).TotalHours,
		})
	}
	sort.SliceStable(summary.ProjectTotals, func(i, j int) bool {
		a, b := summary.ProjectTotals[i], summary.ProjectTotals[j]
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		return a.ProjectNumber < b.ProjectNumber
	})

	return summary
}
