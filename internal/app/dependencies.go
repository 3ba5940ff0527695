package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/timelogger/timelogger/internal/config"
	"github.com/timelogger/timelogger/internal/utils"
	"github.com/timelogger/timelogger/pkg/invoice"
	"github.com/timelogger/timelogger/pkg/project"
	"github.com/timelogger/timelogger/pkg/receipt"
	"github.com/timelogger/timelogger/pkg/report"
	"github.com/timelogger/timelogger/pkg/settings"
	"github.com/timelogger/timelogger/pkg/timeentry"
	"github.com/timelogger/timelogger/pkg/weekly_summary"
)

// Repositories are the read side of the external store.
type Repositories struct {
	TimeEntries timeentry.Repository
	Projects    project.Repository
	Receipts    receipt.Repository
	Settings    settings.Repository
}

func NewRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		TimeEntries: timeentry.NewRepository(db),
		Projects:    project.NewRepository(db),
		Receipts:    receipt.NewRepository(db),
		Settings:    settings.NewRepository(db),
	}
}

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Repositories Repositories
	Clock        utils.Clock

	TimeEntryCsvRenderer *timeentry.CsvRendererImpl
	TimeEntryHandler     *timeentry.Handler

	SettingsService settings.Service
	SettingsHandler *settings.Handler

	InvoiceService      invoice.Service
	InvoiceXlsxRenderer *invoice.XlsxRendererImpl
	InvoiceHandler      *invoice.Handler

	ReportService report.Service
	ReportHandler *report.Handler

	WeeklySummaryService weekly_summary.Service
	WeeklySummaryHandler *weekly_summary.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(repos Repositories, clock utils.Clock, cfg config.Application) *Dependencies {
	deps := &Dependencies{Repositories: repos, Clock: clock}

	deps.TimeEntryCsvRenderer = timeentry.NewCsvRenderer()
	deps.TimeEntryHandler = timeentry.NewHandler(repos.TimeEntries, deps.TimeEntryCsvRenderer)

	deps.SettingsService = settings.NewService(repos.Settings, clock)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.InvoiceService = invoice.NewService(repos.TimeEntries, repos.Receipts, repos.Settings)
	deps.InvoiceXlsxRenderer = invoice.NewXlsxRenderer()
	deps.InvoiceHandler = invoice.NewHandler(deps.InvoiceService, deps.InvoiceXlsxRenderer)

	deps.ReportService = report.NewService(repos.TimeEntries, repos.Projects, clock, cfg.Reports.MonthsBack)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	deps.WeeklySummaryService = weekly_summary.NewService(repos.TimeEntries)
	deps.WeeklySummaryHandler = weekly_summary.NewHandler(deps.WeeklySummaryService)

	return deps
}
