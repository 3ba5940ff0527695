package report

import (
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/grouping"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

type TotalsDTO struct {
	TotalEntries int     `json:"totalEntries"`
	TotalHours   float64 `json:"totalHours"`
	RegularHours float64 `json:"regularHours"`
	OnSiteHours  float64 `json:"onSiteHours"`
	TravelHours  float64 `json:"travelHours"`
	TravelKm     float64 `json:"travelKm"`
}

type CustomerMonthDTO struct {
	CustomerId int    `json:"customerId"`
	Customer   string `json:"customer"`
	Period     string `json:"period"`
	TotalsDTO
}

type ProjectMonthDTO struct {
	ProjectId     int    `json:"projectId"`
	Customer      string `json:"customer"`
	ProjectNumber string `json:"projectNumber"`
	ProjectName   string `json:"projectName"`
	Period        string `json:"period"`
	TotalsDTO
}

type CustomerActivityDTO struct {
	CustomerId     int    `json:"customerId"`
	Customer       string `json:"customer"`
	ActiveProjects int    `json:"activeProjects"`
	FirstEntry     string `json:"firstEntry"`
	LastEntry      string `json:"lastEntry"`
	TotalsDTO
}

type ProjectStatusDTO struct {
	ProjectId          int     `json:"projectId"`
	Customer           string  `json:"customer"`
	ProjectNumber      string  `json:"projectNumber"`
	ProjectName        string  `json:"projectName"`
	Active             bool    `json:"active"`
	LastActivity       *string `json:"lastActivity"`
	DaysSinceLastEntry *int    `json:"daysSinceLastEntry"`
	TotalsDTO
}

type YearToDateDTO struct {
	Year             int     `json:"year"`
	DaysWorked       int     `json:"daysWorked"`
	ProjectsWorked   int     `json:"projectsWorked"`
	CustomersServed  int     `json:"customersServed"`
	AvgHoursPerEntry float64 `json:"avgHoursPerEntry"`
	TotalsDTO
}

type MonthlyComparisonDTO struct {
	YearMonth       string `json:"yearMonth"`
	ProjectsActive  int    `json:"projectsActive"`
	CustomersActive int    `json:"customersActive"`
	TotalsDTO
}

func totalsToDTO(t grouping.Totals) TotalsDTO {
	return TotalsDTO{
		TotalEntries: t.Entries,
		TotalHours:   timeentry.Float(t.TotalHours),
		RegularHours: timeentry.Float(t.RegularHours),
		OnSiteHours:  timeentry.Float(t.OnSiteHours),
		TravelHours:  timeentry.Float(t.TravelHours),
		TravelKm:     timeentry.Float(t.TravelKm),
	}
}

func CustomerMonthToDTO(r CustomerMonthRow) CustomerMonthDTO {
	return CustomerMonthDTO{CustomerId: r.CustomerId, Customer: r.Customer, Period: r.Period, TotalsDTO: totalsToDTO(r.Totals)}
}

func ProjectMonthToDTO(r ProjectMonthRow) ProjectMonthDTO {
	return ProjectMonthDTO{
		ProjectId:     r.ProjectId,
		Customer:      r.Customer,
		ProjectNumber: r.ProjectNumber,
		ProjectName:   r.ProjectName,
		Period:        r.Period,
		TotalsDTO:     totalsToDTO(r.Totals),
	}
}

func CustomerActivityToDTO(r CustomerActivityRow) CustomerActivityDTO {
	return CustomerActivityDTO{
		CustomerId:     r.CustomerId,
		Customer:       r.Customer,
		ActiveProjects: r.DistinctProjects,
		FirstEntry:     r.FirstDate.Format(rest.DateLayout),
		LastEntry:      r.LastDate.Format(rest.DateLayout),
		TotalsDTO:      totalsToDTO(r.Totals),
	}
}

func ProjectStatusToDTO(r ProjectStatusRow) ProjectStatusDTO {
	dto := ProjectStatusDTO{
		ProjectId:          r.ProjectId,
		Customer:           r.Customer,
		ProjectNumber:      r.ProjectNumber,
		ProjectName:        r.ProjectName,
		Active:             r.Active,
		DaysSinceLastEntry: r.DaysSinceLastEntry,
		TotalsDTO:          totalsToDTO(r.Totals),
	}
	if r.LastActivity != nil {
		last := r.LastActivity.Format(rest.DateLayout)
		dto.LastActivity = &last
	}
	return dto
}

func YearToDateToDTO(s YearToDateSummary) YearToDateDTO {
	return YearToDateDTO{
		Year:             s.Year,
		DaysWorked:       s.DistinctDays,
		ProjectsWorked:   s.DistinctProjects,
		CustomersServed:  s.DistinctCustomers,
		AvgHoursPerEntry: timeentry.Float(s.AvgHoursPerEntry),
		TotalsDTO:        totalsToDTO(s.Totals),
	}
}

func MonthlyComparisonToDTO(r MonthlyComparisonRow) MonthlyComparisonDTO {
	return MonthlyComparisonDTO{
		YearMonth:       r.YearMonth,
		ProjectsActive:  r.DistinctProjects,
		CustomersActive: r.DistinctCustomers,
		TotalsDTO:       totalsToDTO(r.Totals),
	}
}

func mapAll[T, D any](rows []T, toDTO func(T) D) []D {
	dtos := make([]D, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toDTO(row))
	}
	return dtos
}
