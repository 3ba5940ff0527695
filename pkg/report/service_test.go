package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timelogger/timelogger/internal/utils"
	"github.com/timelogger/timelogger/pkg/project"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

var ctx = context.Background()

type fixture struct {
	entries  *timeentry.RepositoryStub
	projects *project.RepositoryStub
	clock    *utils.MockClock
	service  Service
}

func setup(t *testing.T) fixture {
	f := fixture{
		entries:  timeentry.NewRepositoryStub(),
		projects: project.NewRepositoryStub(),
		clock:    &utils.MockClock{FixedNow: time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)},
	}
	f.service = NewService(f.entries, f.projects, f.clock, 0)
	return f
}

func TestServiceImpl_MonthlyByCustomer_OnlyThatMonth(t *testing.T) {
	// given
	f := setup(t)
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 2, 28), "1", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 1), "2", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 31), "3", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 4, 1), "4", false))

	// when
	rows, err := f.service.MonthlyByCustomer(ctx, 2026, time.March)

	// then
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "5", rows[0].TotalHours.String())
	assert.Equal(t, 2, rows[0].Entries)
}

func TestServiceImpl_MonthlyByProject_FiltersCustomer(t *testing.T) {
	f := setup(t)
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 3), "2", false))
	f.entries.Add(e(0, abb, 20, "A-1", date(2026, 3, 3), "2", false))

	rows, err := f.service.MonthlyByProject(ctx, 2026, time.March, abb.id)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A-1", rows[0].ProjectNumber)
}

func TestServiceImpl_WeeklyTimesheet_SevenDays(t *testing.T) {
	f := setup(t)
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 8), "1", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 9), "1", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 15), "1", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 16), "1", false))

	entries, err := f.service.WeeklyTimesheet(ctx, date(2026, 3, 9))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, date(2026, 3, 9), entries[0].Date)
	assert.Equal(t, date(2026, 3, 15), entries[1].Date)
}

func TestServiceImpl_ProjectStatus_UsesClockAndAllProjects(t *testing.T) {
	f := setup(t)
	f.projects.Add(project.Project{Id: 10, CustomerId: volvo.id, CustomerName: "Volvo", ProjectNumber: "V-1", IsActive: true})
	f.projects.Add(project.Project{Id: 99, CustomerId: volvo.id, CustomerName: "Volvo", ProjectNumber: "V-9", IsActive: false})
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 1), "1", false))

	rows, err := f.service.ProjectStatus(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 14, *rows[0].DaysSinceLastEntry)
	assert.Equal(t, 99, rows[1].ProjectId)
	assert.Nil(t, rows[1].LastActivity)
}

func TestServiceImpl_YearToDate(t *testing.T) {
	f := setup(t)
	f.entries.Add(e(0, volvo, 10, "V-1", date(2025, 12, 31), "5", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 1, 1), "2", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 12, 31), "4", false))

	summary, err := f.service.YearToDate(ctx, 2026)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Entries)
	assert.Equal(t, "3", summary.AvgHoursPerEntry.String())
}

func TestServiceImpl_MonthlyComparison_Window(t *testing.T) {
	tests := []struct {
		name       string
		monthsBack int
		want       []string
	}{
		{"default window", 0, []string{"2026-03", "2026-02", "2025-09"}},
		{"negative falls back to default", -2, []string{"2026-03", "2026-02", "2025-09"}},
		{"explicit window", 1, []string{"2026-03", "2026-02"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.entries.Add(e(0, volvo, 10, "V-1", date(2025, 9, 14), "1", false))
			f.entries.Add(e(0, volvo, 10, "V-1", date(2025, 9, 15), "1", false))
			f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 2, 20), "1", false))
			f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 15), "1", false))
			f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 16), "1", false))

			rows, err := f.service.MonthlyComparison(ctx, tt.monthsBack)

			require.NoError(t, err)
			months := make([]string, 0, len(rows))
			for _, r := range rows {
				months = append(months, r.YearMonth)
			}
			assert.Equal(t, tt.want, months)
			for _, r := range rows {
				assert.Equal(t, 1, r.Entries)
			}
		})
	}
}

func TestServiceImpl_MonthlyComparison_MonthEndWindow(t *testing.T) {
	// given
	f := setup(t)
	f.clock.SetNow(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 2, 27), "5", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 2, 28), "3", false))
	f.entries.Add(e(0, volvo, 10, "V-1", date(2026, 3, 1), "4", false))

	// when
	rows, err := f.service.MonthlyComparison(ctx, 6)

	// then
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03", rows[0].YearMonth)
	assert.Equal(t, "4", rows[0].TotalHours.String())
	assert.Equal(t, "2026-02", rows[1].YearMonth)
	assert.Equal(t, "3", rows[1].TotalHours.String())
}
