package report

import (
	"context"
	"time"

	"github.com/timelogger/timelogger/internal/utils"
	"github.com/timelogger/timelogger/pkg/project"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

const DefaultMonthsBack = 6

type EntryReader interface {
	FetchTimeEntries(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, error)
}

type ProjectReader interface {
	FetchProjects(ctx context.Context, customerId int, includeInactive bool) ([]project.Project, error)
}

type Service interface {
	MonthlyByCustomer(ctx context.Context, year int, month time.Month) ([]CustomerMonthRow, error)
	MonthlyByProject(ctx context.Context, year int, month time.Month, customerId int) ([]ProjectMonthRow, error)
	InvoicePreparation(ctx context.Context, from, to time.Time, customerId int) ([]timeentry.TimeEntry, error)
	WeeklyTimesheet(ctx context.Context, weekStart time.Time) ([]timeentry.TimeEntry, error)
	CustomerActivity(ctx context.Context, from, to time.Time) ([]CustomerActivityRow, error)
	ProjectStatus(ctx context.Context) ([]ProjectStatusRow, error)
	YearToDate(ctx context.Context, year int) (YearToDateSummary, error)
	// MonthlyComparison covers [today - monthsBack months, today]. monthsBack <= 0 uses the configured default.
	MonthlyComparison(ctx context.Context, monthsBack int) ([]MonthlyComparisonRow, error)
}

type ServiceImpl struct {
	entries    EntryReader
	projects   ProjectReader
	clock      utils.Clock
	monthsBack int
}

func NewService(entries EntryReader, projects ProjectReader, clock utils.Clock, defaultMonthsBack int) *ServiceImpl {
	if defaultMonthsBack <= 0 {
		defaultMonthsBack = DefaultMonthsBack
	}
	return &ServiceImpl{entries: entries, projects: projects, clock: clock, monthsBack: defaultMonthsBack}
}

func (s *ServiceImpl) MonthlyByCustomer(ctx context.Context, year int, month time.Month) ([]CustomerMonthRow, error) {
	from, to := MonthRange(year, month)
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return MonthlyByCustomer(entries, from), nil
}

func (s *ServiceImpl) MonthlyByProject(ctx context.Context, year int, month time.Month, customerId int) ([]ProjectMonthRow, error) {
	from, to := MonthRange(year, month)
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to, CustomerId: customerId})
	if err != nil {
		return nil, err
	}
	return MonthlyByProject(entries, from), nil
}

func (s *ServiceImpl) InvoicePreparation(ctx context.Context, from, to time.Time, customerId int) ([]timeentry.TimeEntry, error) {
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to, CustomerId: customerId})
	if err != nil {
		return nil, err
	}
	return InvoicePreparation(entries), nil
}

func (s *ServiceImpl) WeeklyTimesheet(ctx context.Context, weekStart time.Time) ([]timeentry.TimeEntry, error) {
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: weekStart, To: weekStart.AddDate(0, 0, 6)})
	if err != nil {
		return nil, err
	}
	return WeeklyTimesheet(entries), nil
}

func (s *ServiceImpl) CustomerActivity(ctx context.Context, from, to time.Time) ([]CustomerActivityRow, error) {
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return CustomerActivity(entries), nil
}

func (s *ServiceImpl) ProjectStatus(ctx context.Context) ([]ProjectStatusRow, error) {
	projects, err := s.projects.FetchProjects(ctx, 0, true)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{})
	if err != nil {
		return nil, err
	}
	return ProjectStatus(projects, entries, utils.Today(s.clock)), nil
}

func (s *ServiceImpl) YearToDate(ctx context.Context, year int) (YearToDateSummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: from, To: to})
	if err != nil {
		return YearToDateSummary{}, err
	}
	return YearToDate(year, entries), nil
}

func (s *ServiceImpl) MonthlyComparison(ctx context.Context, monthsBack int) ([]MonthlyComparisonRow, error) {
	if monthsBack <= 0 {
		monthsBack = s.monthsBack
	}
	today := utils.Today(s.clock)
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{From: utils.AddMonths(today, -monthsBack), To: today})
	if err != nil {
		return nil, err
	}
	return MonthlyComparison(entries), nil
}
