package invoice

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/pkg/grouping"
	"github.com/timelogger/timelogger/pkg/receipt"
	"github.com/timelogger/timelogger/pkg/settings"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

type EntryReader interface {
	FetchTimeEntries(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, error)
}

type ReceiptReader interface {
	FetchReceipts(ctx context.Context, projectId int, from, to time.Time) ([]receipt.Receipt, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type Service interface {
	// BuildInvoiceExport prices every invoiceable project with entries in [from, to].
	// customerId 0 means all customers.
	BuildInvoiceExport(ctx context.Context, from, to time.Time, customerId int) ([]ProjectInvoice, error)
}

type ServiceImpl struct {
	entries  EntryReader
	receipts ReceiptReader
	settings SettingsReader
}

func NewService(entries EntryReader, receipts ReceiptReader, settings SettingsReader) *ServiceImpl {
	return &ServiceImpl{entries: entries, receipts: receipts, settings: settings}
}

func (s *ServiceImpl) BuildInvoiceExport(ctx context.Context, from, to time.Time, customerId int) ([]ProjectInvoice, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	rates := RatesFrom(current)

	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to, CustomerId: customerId})
	if err != nil {
		return nil, err
	}

	groups := grouping.GroupBy(entries, func(e timeentry.TimeEntry) int { return e.ProjectId })
	invoices := make([]ProjectInvoice, 0, len(groups))
	for _, group := range groups {
		receipts, err := s.receipts.FetchReceipts(ctx, group.Key, from, to)
		if err != nil {
			return nil, err
		}
		inv, err := BuildProjectInvoice(group.Items, receipts, rates, from)
		if err != nil {
			err := fmt.Errorf("could not price project %s: %w", group.Items[0].ProjectNumber, err)
			log.Error(err)
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	SortByCustomerAndProject(invoices)
	return invoices, nil
}
