package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timelogger/timelogger/pkg/currency"
	"github.com/timelogger/timelogger/pkg/receipt"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

var periodStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

var rates = Rates{
	HourlyRate:       decimal.NewFromInt(150),
	TravelHourlyRate: decimal.NewFromInt(75),
	KmCost:           decimal.RequireFromString("0.25"),
	SekToEurRate:     decimal.RequireFromString("11.36"),
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func optional(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func entry(id, timeCodeId, code int, hours string, onSite bool) timeentry.TimeEntry {
	return timeentry.TimeEntry{
		Id:                  id,
		ProjectId:           7,
		ProjectNumber:       "P-100",
		ProjectName:         "Brakes",
		CustomerId:          3,
		CustomerName:        "Volvo",
		TimeCodeId:          timeCodeId,
		TimeCode:            code,
		TimeCodeDescription: "code " + decimal.NewFromInt(int64(code)).String(),
		Date:                periodStart.AddDate(0, 0, id),
		Hours:               optional(hours),
		IsOnSite:            onSite,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestBuildProjectInvoice_TimeCodeBuckets(t *testing.T) {
	// given
	entries := []timeentry.TimeEntry{
		entry(1, 12, 530, "2", false),
		entry(2, 11, 500, "1.5", false),
		entry(3, 11, 500, "2.5", false),
	}

	// when
	inv, err := BuildProjectInvoice(entries, nil, rates, periodStart)

	// then
	require.NoError(t, err)
	require.Len(t, inv.RegularHoursByTimeCode, 2)
	assert.Equal(t, 500, inv.RegularHoursByTimeCode[0].TimeCode)
	assertDecimal(t, "4", inv.RegularHoursByTimeCode[0].Hours)
	assertDecimal(t, "600", inv.RegularHoursByTimeCode[0].Cost)
	assert.Equal(t, 530, inv.RegularHoursByTimeCode[1].TimeCode)
	assertDecimal(t, "2", inv.RegularHoursByTimeCode[1].Hours)
	assertDecimal(t, "300", inv.RegularHoursByTimeCode[1].Cost)
	assertDecimal(t, "6", inv.RegularHours)
	assertDecimal(t, "900", inv.RegularCost)
	assert.Empty(t, inv.OnSiteHoursByTimeCode)
	assertDecimal(t, "0", inv.OnSiteCost)
	assertDecimal(t, "900", inv.GrandTotal)
	assert.Equal(t, "March 2026", inv.Period)
	assert.Equal(t, "Volvo", inv.Customer)
	assert.Equal(t, "P-100", inv.ProjectNumber)
	assert.Equal(t, rates, inv.Rates)
}

func TestBuildProjectInvoice_FullCostBreakdown(t *testing.T) {
	// given
	start := 8 * time.Hour
	end := 12*time.Hour + 30*time.Minute
	onSiteRange := entry(4, 11, 500, "0", true)
	onSiteRange.Hours = decimal.NullDecimal{}
	onSiteRange.StartTime = &start
	onSiteRange.EndTime = &end
	onSiteRange.TravelHours = optional("1.5")
	onSiteRange.TravelKm = optional("120")

	regular := entry(1, 11, 500, "3", false)
	regular.TravelKm = optional("10")

	receipts := []receipt.Receipt{
		{Id: 1, ProjectId: 7, Cost: dec("1136"), Currency: currency.SEK},
		{Id: 2, ProjectId: 7, Cost: dec("42.50"), Currency: currency.EUR},
	}

	// when
	inv, err := BuildProjectInvoice([]timeentry.TimeEntry{regular, onSiteRange}, receipts, rates, periodStart)

	// then
	require.NoError(t, err)
	assertDecimal(t, "3", inv.RegularHours)
	assertDecimal(t, "450", inv.RegularCost)
	assertDecimal(t, "4.5", inv.OnSiteHours)
	assertDecimal(t, "675", inv.OnSiteCost)
	assertDecimal(t, "1.5", inv.TravelHours)
	assertDecimal(t, "130", inv.TravelKm)
	assertDecimal(t, "112.5", inv.TravelTimeCost)
	assertDecimal(t, "32.5", inv.TravelDistanceCost)
	require.Len(t, inv.Receipts, 2)
	assertDecimal(t, "100", inv.Receipts[0].CostInEur)
	assertDecimal(t, "42.5", inv.Receipts[1].CostInEur)
	assertDecimal(t, "142.5", inv.ReceiptsCost)
	assertDecimal(t, "1412.5", inv.GrandTotal)
	assert.Len(t, inv.Entries, 2)
}

func TestBuildProjectInvoice_CostsAddUp(t *testing.T) {
	entries := []timeentry.TimeEntry{
		entry(1, 11, 500, "0.1", false),
		entry(2, 12, 530, "0.2", true),
		entry(3, 13, 610, "7.35", false),
		entry(4, 11, 500, "0.05", true),
	}
	entries[2].TravelHours = optional("0.75")
	entries[3].TravelKm = optional("33.3")
	receipts := []receipt.Receipt{{Cost: dec("99.99"), Currency: currency.SEK}}

	inv, err := BuildProjectInvoice(entries, receipts, rates, periodStart)

	require.NoError(t, err)
	bucketCost := decimal.Zero
	for _, b := range append(inv.RegularHoursByTimeCode, inv.OnSiteHoursByTimeCode...) {
		bucketCost = bucketCost.Add(b.Cost)
	}
	assert.True(t, bucketCost.Equal(inv.RegularCost.Add(inv.OnSiteCost)))
	expected := inv.RegularCost.Add(inv.OnSiteCost).Add(inv.TravelTimeCost).Add(inv.TravelDistanceCost).Add(inv.ReceiptsCost)
	assert.True(t, expected.Equal(inv.GrandTotal))
}

func TestBuildProjectInvoice_UnknownCurrencyFails(t *testing.T) {
	receipts := []receipt.Receipt{{Cost: dec("10"), Currency: currency.Code("USD")}}

	_, err := BuildProjectInvoice([]timeentry.TimeEntry{entry(1, 11, 500, "1", false)}, receipts, rates, periodStart)

	assert.ErrorIs(t, err, currency.ErrInvalidCurrency)
}

func TestBuildProjectInvoice_NoEntries(t *testing.T) {
	_, err := BuildProjectInvoice(nil, nil, rates, periodStart)

	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestSortByCustomerAndProject(t *testing.T) {
	invoices := []ProjectInvoice{
		{Customer: "Volvo", ProjectNumber: "B", ProjectId: 1},
		{Customer: "ABB", ProjectNumber: "Z", ProjectId: 2},
		{Customer: "Volvo", ProjectNumber: "A", ProjectId: 3},
	}

	SortByCustomerAndProject(invoices)

	assert.Equal(t, 2, invoices[0].ProjectId)
	assert.Equal(t, 3, invoices[1].ProjectId)
	assert.Equal(t, 1, invoices[2].ProjectId)
}
