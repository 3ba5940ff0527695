package timeentry

import (
	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/internal/rest"
)

type EntryDTO struct {
	Id                  int     `json:"id"`
	Date                string  `json:"date"`
	DayOfWeek           string  `json:"dayOfWeek"`
	CustomerId          int     `json:"customerId"`
	CustomerName        string  `json:"customerName"`
	ProjectId           int     `json:"projectId"`
	ProjectNumber       string  `json:"projectNumber"`
	ProjectName         string  `json:"projectName"`
	TimeCode            int     `json:"timeCode"`
	TimeCodeDescription string  `json:"timeCodeDescription"`
	Hours               float64 `json:"hours"`
	StartTime           string  `json:"startTime,omitempty"`
	EndTime             string  `json:"endTime,omitempty"`
	Description         string  `json:"description"`
	IsOnSite            bool    `json:"isOnSite"`
	TravelHours         float64 `json:"travelHours"`
	TravelKm            float64 `json:"travelKm"`
}

func EntryToDTO(entry TimeEntry) EntryDTO {
	return EntryDTO{
		Id:                  entry.Id,
		Date:                entry.Date.Format(rest.DateLayout),
		DayOfWeek:           entry.Date.Weekday().String(),
		CustomerId:          entry.CustomerId,
		CustomerName:        entry.CustomerName,
		ProjectId:           entry.ProjectId,
		ProjectNumber:       entry.ProjectNumber,
		ProjectName:         entry.ProjectName,
		TimeCode:            entry.TimeCode,
		TimeCodeDescription: entry.TimeCodeDescription,
		Hours:               Float(ComputeHours(entry)),
		StartTime:           FormatTimeOfDay(entry.StartTime),
		EndTime:             FormatTimeOfDay(entry.EndTime),
		Description:         entry.Description,
		IsOnSite:            entry.IsOnSite,
		TravelHours:         Float(OrZero(entry.TravelHours)),
		TravelKm:            Float(OrZero(entry.TravelKm)),
	}
}

func EntriesToDTO(entries []TimeEntry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryToDTO(entry))
	}
	return dtos
}

// Float converts a decimal for the JSON boundary. Arithmetic stays in decimal until here.
func Float(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
