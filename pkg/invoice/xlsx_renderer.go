package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/timeentry"
	"github.com/xuri/excelize/v2"
)

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

type XlsxRendererImpl struct {
}

func NewXlsxRenderer() *XlsxRendererImpl {
	return &XlsxRendererImpl{}
}

// RenderInvoices writes one worksheet per project invoice.
func (x *XlsxRendererImpl) RenderInvoices(invoices []ProjectInvoice) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("failed to close workbook: %v", err)
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("could not create style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	if len(invoices) == 0 {
		if err := f.SetSheetName(defaultSheet, "Invoice"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Invoice", "A1", "No invoiceable entries in the selected period"); err != nil {
			return nil, err
		}
	}

	used := make(map[string]bool)
	for _, inv := range invoices {
		name := uniqueSheetName(SheetName(inv.Customer, inv.ProjectNumber), used)
		if _, err := f.NewSheet(name); err != nil {
			err := fmt.Errorf("could not create sheet %q: %w", name, err)
			log.Error(err)
			return nil, err
		}
		w := &sheetWriter{f: f, sheet: name, row: 1, bold: bold}
		w.invoice(inv)
		if w.err != nil {
			err := fmt.Errorf("could not write sheet %q: %w", name, w.err)
			log.Error(err)
			return nil, err
		}
	}
	if len(invoices) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, err
		}
		f.SetActiveSheet(0)
	}

	var b *bytes.Buffer
	if b, err = f.WriteToBuffer(); err != nil {
		err := fmt.Errorf("could not write workbook: %w", err)
		log.Error(err)
		return nil, err
	}
	return b.Bytes(), nil
}

// SheetName builds the worksheet title "customer-projectNumber", stripped of characters
// Excel rejects and cut to 31 characters.
func SheetName(customer, projectNumber string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(customer + "-" + projectNumber))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Project"
	}
	return truncate(name, maxSheetNameLength)
}

func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncate(name, maxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, runes int) string {
	if utf8.RuneCountInString(s) <= runes {
		return s
	}
	return string([]rune(s)[:runes])
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	bold  int
	err   error
}

func (w *sheetWriter) cell(col int) string {
	name, _ := excelize.CoordinatesToCellName(col, w.row)
	return name
}

func (w *sheetWriter) line(bold bool, values ...any) {
	if w.err != nil {
		return
	}
	if w.err = w.f.SetSheetRow(w.sheet, w.cell(1), &values); w.err != nil {
		return
	}
	if bold {
		w.err = w.f.SetCellStyle(w.sheet, w.cell(1), w.cell(len(values)), w.bold)
	}
	w.row++
}

func (w *sheetWriter) formula(col int, formula string) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellFormula(w.sheet, w.cell(col), formula)
}

func (w *sheetWriter) skip() {
	w.row++
}

func (w *sheetWriter) invoice(inv ProjectInvoice) {
	if w.err = w.f.SetColWidth(w.sheet, "A", "A", 24); w.err != nil {
		return
	}
	if w.err = w.f.SetColWidth(w.sheet, "B", "G", 16); w.err != nil {
		return
	}

	w.line(true, "Customer:", inv.Customer)
	w.line(true, "Project:", inv.ProjectNumber+" - "+inv.ProjectName)
	w.line(false, "Period:", inv.Period)
	w.skip()

	w.costTable(inv)
	w.skip()
	w.timeCodes("REGULAR HOURS", inv.RegularHoursByTimeCode, inv)
	w.timeCodes("ON-SITE HOURS", inv.OnSiteHoursByTimeCode, inv)
	w.receipts(inv)
	w.details(inv)
}

func (w *sheetWriter) costTable(inv ProjectInvoice) {
	w.line(true, "", "Quantity", "Unit", "Rate (€)", "Total (€)")
	first := w.row
	items := []struct {
		label    string
		quantity float64
		unit     string
		rate     float64
	}{
		{"Regular hours", inv.RegularHours.InexactFloat64(), "h", inv.Rates.HourlyRate.InexactFloat64()},
		{"On-site hours", inv.OnSiteHours.InexactFloat64(), "h", inv.Rates.HourlyRate.InexactFloat64()},
		{"Travel time", inv.TravelHours.InexactFloat64(), "h", inv.Rates.TravelHourlyRate.InexactFloat64()},
		{"Travel distance", inv.TravelKm.InexactFloat64(), "km", inv.Rates.KmCost.InexactFloat64()},
	}
	for _, item := range items {
		w.formula(5, fmt.Sprintf("B%d*D%d", w.row, w.row))
		w.line(false, item.label, item.quantity, item.unit, item.rate)
	}
	w.line(false, "Receipts", len(inv.Receipts), "pcs", "", inv.ReceiptsCost.InexactFloat64())
	last := w.row - 1
	w.formula(5, fmt.Sprintf("SUM(E%d:E%d)", first, last))
	w.line(true, "PROJECT TOTAL", "", "", "")
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, fmt.Sprintf("E%d", w.row-1), fmt.Sprintf("E%d", w.row-1), w.bold)
	}
}

func (w *sheetWriter) timeCodes(title string, buckets []TimeCodeHours, inv ProjectInvoice) {
	if len(buckets) == 0 {
		return
	}
	w.line(true, title)
	for _, b := range buckets {
		w.line(false,
			fmt.Sprintf("%d - %s", b.TimeCode, b.Description),
			b.Hours.InexactFloat64(),
			"h",
			inv.Rates.HourlyRate.InexactFloat64(),
			b.Cost.InexactFloat64(),
		)
	}
	w.skip()
}

func (w *sheetWriter) receipts(inv ProjectInvoice) {
	if len(inv.Receipts) == 0 {
		return
	}
	w.line(true, "RECEIPTS")
	w.line(true, "Date", "File", "Cost", "Currency", "Total (€)")
	for _, r := range inv.Receipts {
		w.line(false,
			r.Date.Format(rest.DateLayout),
			r.FileName,
			r.Cost.InexactFloat64(),
			string(r.Currency),
			r.CostInEur.InexactFloat64(),
		)
	}
	w.skip()
}

func (w *sheetWriter) details(inv ProjectInvoice) {
	w.line(true, "TIME ENTRY DETAILS")
	w.line(true, "Date", "Time Code", "Description", "Hours", "Work Type", "Travel Time", "Travel Distance")
	for _, entry := range inv.Entries {
		description := entry.Description
		if description == "" {
			description = "(no description)"
		}
		workType := "Regular"
		if entry.IsOnSite {
			workType = "On-Site"
		}
		w.line(false,
			entry.Date.Format("Mon, Jan 02, 2006"),
			fmt.Sprintf("%d - %s", entry.TimeCode, entry.TimeCodeDescription),
			description,
			timeentry.ComputeHours(entry).InexactFloat64(),
			workType,
			timeentry.OrZero(entry.TravelHours).InexactFloat64(),
			timeentry.OrZero(entry.TravelKm).InexactFloat64(),
		)
	}
}
