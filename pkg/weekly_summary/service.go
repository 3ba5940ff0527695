package weekly_summary

import (
	"context"
	"time"

	"github.com/timelogger/timelogger/pkg/timeentry"
)

type EntryReader interface {
	FetchTimeEntries(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, error)
}

type Service interface {
	// GetWeeklySummary builds the summary of the Monday-based week containing date.
	// Zero customerId or projectId means no filter.
	GetWeeklySummary(ctx context.Context, date time.Time, customerId, projectId int) (WeeklySummary, error)
}

type ServiceImpl struct {
	entries EntryReader
}

func NewService(entries EntryReader) *ServiceImpl {
	return &ServiceImpl{entries: entries}
}

func (s *ServiceImpl) GetWeeklySummary(ctx context.Context, date time.Time, customerId, projectId int) (WeeklySummary, error) {
	weekStart := WeekStart(date)
	entries, err := s.entries.FetchTimeEntries(ctx, timeentry.Filter{
		From:       weekStart,
		To:         weekStart.AddDate(0, 0, DaysInWeek-1),
		CustomerId: customerId,
		ProjectId:  projectId,
	})
	if err != nil {
		return WeeklySummary{}, err
	}
	return BuildWeeklySummary(date, entries), nil
}
