package weekly_summary

import (
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

type DailySummaryDTO struct {
	Date       string               `json:"date"`
	DayOfWeek  string               `json:"dayOfWeek"`
	Entries    []timeentry.EntryDTO `json:"entries"`
	DailyTotal float64              `json:"dailyTotal"`
}

type ProjectTotalDTO struct {
	ProjectId     int     `json:"projectId"`
	ProjectName   string  `json:"projectName"`
	ProjectNumber string  `json:"projectNumber"`
	CustomerName  string  `json:"customerName"`
	TotalHours    float64 `json:"totalHours"`
}

type WeeklySummaryDTO struct {
	WeekStartDate string            `json:"weekStartDate"`
	Days          []DailySummaryDTO `json:"days"`
	ProjectTotals []ProjectTotalDTO `json:"projectTotals"`
	TotalHours    float64           `json:"totalHours"`
}

func WeeklySummaryToDTO(summary WeeklySummary) WeeklySummaryDTO {
	days := make([]DailySummaryDTO, 0, len(summary.Days))
	for _, day := range summary.Days {
		days = append(days, DailySummaryDTO{
			Date:       day.Date.Format(rest.DateLayout),
			DayOfWeek:  day.Date.Weekday().String(),
			Entries:    timeentry.EntriesToDTO(day.Entries),
			DailyTotal: timeentry.Float(day.DailyTotal),
		})
	}
	totals := make([]ProjectTotalDTO, 0, len(summary.ProjectTotals))
	for _, total := range summary.ProjectTotals {
		totals = append(totals, ProjectTotalDTO{
			ProjectId:     total.ProjectId,
			ProjectName:   total.ProjectName,
			ProjectNumber: total.ProjectNumber,
			CustomerName:  total.CustomerName,
			TotalHours:    timeentry.Float(total.TotalHours),
		})
	}
	return WeeklySummaryDTO{
		WeekStartDate: summary.WeekStart.Format(rest.DateLayout),
		Days:          days,
		ProjectTotals: totals,
		TotalHours:    timeentry.Float(summary.TotalHours),
	}
}
