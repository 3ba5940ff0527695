package invoice

import (
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

type TimeCodeHoursDTO struct {
	TimeCode            int     `json:"timeCode"`
	TimeCodeDescription string  `json:"timeCodeDescription"`
	Hours               float64 `json:"hours"`
	Cost                float64 `json:"cost"`
}

type ReceiptDTO struct {
	Id          int     `json:"id"`
	Date        string  `json:"date"`
	ReceiptType string  `json:"receiptType"`
	FileName    string  `json:"fileName"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
	CostInEur   float64 `json:"costInEur"`
}

type ProjectInvoiceDTO struct {
	CustomerId             int                  `json:"customerId"`
	Customer               string               `json:"customer"`
	ProjectId              int                  `json:"projectId"`
	ProjectNumber          string               `json:"projectNumber"`
	ProjectName            string               `json:"projectName"`
	Period                 string               `json:"period"`
	RegularHoursByTimeCode []TimeCodeHoursDTO   `json:"regularHoursByTimeCode"`
	OnSiteHoursByTimeCode  []TimeCodeHoursDTO   `json:"onSiteHoursByTimeCode"`
	RegularHours           float64              `json:"regularHours"`
	OnSiteHours            float64              `json:"onSiteHours"`
	TravelHours            float64              `json:"travelHours"`
	TravelKm               float64              `json:"travelKm"`
	HourlyRate             float64              `json:"hourlyRate"`
	TravelHourlyRate       float64              `json:"travelHourlyRate"`
	KmCost                 float64              `json:"kmCost"`
	SekToEurRate           float64              `json:"sekToEurRate"`
	RegularCost            float64              `json:"regularCost"`
	OnSiteCost             float64              `json:"onSiteCost"`
	TravelTimeCost         float64              `json:"travelTimeCost"`
	TravelDistanceCost     float64              `json:"travelDistanceCost"`
	ReceiptsCost           float64              `json:"receiptsCost"`
	GrandTotal             float64              `json:"grandTotal"`
	Entries                []timeentry.EntryDTO `json:"entries"`
	Receipts               []ReceiptDTO         `json:"receipts"`
}

func ProjectInvoiceToDTO(inv ProjectInvoice) ProjectInvoiceDTO {
	receipts := make([]ReceiptDTO, 0, len(inv.Receipts))
	for _, r := range inv.Receipts {
		receipts = append(receipts, ReceiptDTO{
			Id:          r.Id,
			Date:        r.Date.Format(rest.DateLayout),
			ReceiptType: r.ReceiptTypeName,
			FileName:    r.FileName,
			Cost:        timeentry.Float(r.Cost),
			Currency:    string(r.Currency),
			CostInEur:   timeentry.Float(r.CostInEur),
		})
	}
	return ProjectInvoiceDTO{
		CustomerId:             inv.CustomerId,
		Customer:               inv.Customer,
		ProjectId:              inv.ProjectId,
		ProjectNumber:          inv.ProjectNumber,
		ProjectName:            inv.ProjectName,
		Period:                 inv.Period,
		RegularHoursByTimeCode: timeCodesToDTO(inv.RegularHoursByTimeCode),
		OnSiteHoursByTimeCode:  timeCodesToDTO(inv.OnSiteHoursByTimeCode),
		RegularHours:           timeentry.Float(inv.RegularHours),
		OnSiteHours:            timeentry.Float(inv.OnSiteHours),
		TravelHours:            timeentry.Float(inv.TravelHours),
		TravelKm:               timeentry.Float(inv.TravelKm),
		HourlyRate:             timeentry.Float(inv.Rates.HourlyRate),
		TravelHourlyRate:       timeentry.Float(inv.Rates.TravelHourlyRate),
		KmCost:                 timeentry.Float(inv.Rates.KmCost),
		SekToEurRate:           timeentry.Float(inv.Rates.SekToEurRate),
		RegularCost:            timeentry.Float(inv.RegularCost),
		OnSiteCost:             timeentry.Float(inv.OnSiteCost),
		TravelTimeCost:         timeentry.Float(inv.TravelTimeCost),
		TravelDistanceCost:     timeentry.Float(inv.TravelDistanceCost),
		ReceiptsCost:           timeentry.Float(inv.ReceiptsCost),
		GrandTotal:             timeentry.Float(inv.GrandTotal),
		Entries:                timeentry.EntriesToDTO(inv.Entries),
		Receipts:               receipts,
	}
}

func timeCodesToDTO(buckets []TimeCodeHours) []TimeCodeHoursDTO {
	dtos := make([]TimeCodeHoursDTO, 0, len(buckets))
	for _, b := range buckets {
		dtos = append(dtos, TimeCodeHoursDTO{
			TimeCode:            b.TimeCode,
			TimeCodeDescription: b.Description,
			Hours:               timeentry.Float(b.Hours),
			Cost:                timeentry.Float(b.Cost),
		})
	}
	return dtos
}
