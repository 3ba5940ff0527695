package invoice

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/pkg/currency"
	"github.com/timelogger/timelogger/pkg/grouping"
	"github.com/timelogger/timelogger/pkg/receipt"
	"github.com/timelogger/timelogger/pkg/settings"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

var ErrNoEntries = errors.New("project has no entries to invoice")

// PeriodLayout renders the invoice period from its start date, e.g. "March 2026".
const PeriodLayout = "January 2006"

type TimeCodeHours struct {
	TimeCodeId  int
	TimeCode    int
	Description string
	Hours       decimal.Decimal
	Cost        decimal.Decimal
}

// Rates is the snapshot of the settings used to price an invoice.
type Rates struct {
	HourlyRate       decimal.Decimal
	TravelHourlyRate decimal.Decimal
	KmCost           decimal.Decimal
	SekToEurRate     decimal.Decimal
}

func RatesFrom(s settings.Settings) Rates {
	return Rates{
		HourlyRate:       s.HourlyRateEur,
		TravelHourlyRate: s.TravelHourlyRateEur,
		KmCost:           s.KmCost,
		SekToEurRate:     s.SekToEurRate,
	}
}

type InvoiceReceipt struct {
	receipt.Receipt
	CostInEur decimal.Decimal
}

type ProjectInvoice struct {
	ProjectId     int
	CustomerId    int
	Customer      string
	ProjectNumber string
	ProjectName   string
	Period        string

	RegularHoursByTimeCode []TimeCodeHours
	OnSiteHoursByTimeCode  []TimeCodeHours

	RegularHours decimal.Decimal
	OnSiteHours  decimal.Decimal
	TravelHours  decimal.Decimal
	TravelKm     decimal.Decimal

	Rates Rates

	RegularCost        decimal.Decimal
	OnSiteCost         decimal.Decimal
	TravelTimeCost     decimal.Decimal
	TravelDistanceCost decimal.Decimal
	ReceiptsCost       decimal.Decimal
	GrandTotal         decimal.Decimal

	Entries  []timeentry.TimeEntry
	Receipts []InvoiceReceipt
}

// BuildProjectInvoice prices the entries and receipts of a single project.
// All entries must belong to the same project.
func BuildProjectInvoice(entries []timeentry.TimeEntry, receipts []receipt.Receipt, rates Rates, periodStart time.Time) (ProjectInvoice, error) {
	if len(entries) == 0 {
		return ProjectInvoice{}, ErrNoEntries
	}
	first := entries[0]
	inv := ProjectInvoice{
		ProjectId:     first.ProjectId,
		CustomerId:    first.CustomerId,
		Customer:      first.CustomerName,
		ProjectNumber: first.ProjectNumber,
		ProjectName:   first.ProjectName,
		Period:        periodStart.Format(PeriodLayout),
		Rates:         rates,
		TravelHours:   decimal.Zero,
		TravelKm:      decimal.Zero,
		ReceiptsCost:  decimal.Zero,
		Entries:       entries,
		Receipts:      make([]InvoiceReceipt, 0, len(receipts)),
	}

	onSite, regular := grouping.Partition(entries, func(e timeentry.TimeEntry) bool { return e.IsOnSite })
	inv.RegularHoursByTimeCode = hoursByTimeCode(regular, rates.HourlyRate)
	inv.OnSiteHoursByTimeCode = hoursByTimeCode(onSite, rates.HourlyRate)
	inv.RegularHours, inv.RegularCost = sumBuckets(inv.RegularHoursByTimeCode)
	inv.OnSiteHours, inv.OnSiteCost = sumBuckets(inv.OnSiteHoursByTimeCode)

	for _, entry := range entries {
		inv.TravelHours = inv.TravelHours.Add(timeentry.OrZero(entry.TravelHours))
		inv.TravelKm = inv.TravelKm.Add(timeentry.OrZero(entry.TravelKm))
	}
	inv.TravelTimeCost = inv.TravelHours.Mul(rates.TravelHourlyRate)
	inv.TravelDistanceCost = inv.TravelKm.Mul(rates.KmCost)

	for _, r := range receipts {
		inEur, err := currency.ToEur(r.Cost, r.Currency, rates.SekToEurRate)
		if err != nil {
			return ProjectInvoice{}, err
		}
		inv.Receipts = append(inv.Receipts, InvoiceReceipt{Receipt: r, CostInEur: inEur})
		inv.ReceiptsCost = inv.ReceiptsCost.Add(inEur)
	}

	inv.GrandTotal = inv.RegularCost.
		Add(inv.OnSiteCost).
		Add(inv.TravelTimeCost).
		Add(inv.TravelDistanceCost).
		Add(inv.ReceiptsCost)
	return inv, nil
}

func hoursByTimeCode(entries []timeentry.TimeEntry, hourlyRate decimal.Decimal) []TimeCodeHours {
	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.TimeCodeId })
	buckets := make([]TimeCodeHours, 0, len(groups))
	for _, group := range groups {
		hours := decimal.Zero
		for _, entry := range group.Items {
			hours = hours.Add(timeentry.ComputeHours(entry))
		}
		buckets = append(buckets, TimeCodeHours{
			TimeCodeId:  group.Key,
			TimeCode:    group.Items[0].TimeCode,
			Description: group.Items[0].TimeCodeDescription,
			Hours:       hours,
			Cost:        hours.Mul(hourlyRate),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TimeCode < buckets[j].TimeCode
	})
	return buckets
}

func sumBuckets(buckets []TimeCodeHours) (hours, cost decimal.Decimal) {
	hours, cost = decimal.Zero, decimal.Zero
	for _, b := range buckets {
		hours = hours.Add(b.Hours)
		cost = cost.Add(b.Cost)
	}
	return hours, cost
}

// SortByCustomerAndProject orders invoices by customer name, then project number.
func SortByCustomerAndProject(invoices []ProjectInvoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		if invoices[i].Customer != invoices[j].Customer {
			return invoices[i].Customer < invoices[j].Customer
		}
		return invoices[i].ProjectNumber < invoices[j].ProjectNumber
	})
}
