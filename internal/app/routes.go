package app

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Reports
	r.HandleFunc("/api/reports/monthly-customer", deps.ReportHandler.MonthlyCustomer).Methods("GET")
	r.HandleFunc("/api/reports/monthly-project", deps.ReportHandler.MonthlyProject).Methods("GET")
	r.HandleFunc("/api/reports/invoice", deps.ReportHandler.Invoice).Methods("GET")
	r.HandleFunc("/api/reports/invoice-export", deps.InvoiceHandler.Export).Methods("GET")
	r.HandleFunc("/api/reports/weekly-timesheet", deps.ReportHandler.WeeklyTimesheet).Methods("GET")
	r.HandleFunc("/api/reports/customer-activity", deps.ReportHandler.CustomerActivity).Methods("GET")
	r.HandleFunc("/api/reports/project-status", deps.ReportHandler.ProjectStatus).Methods("GET")
	r.HandleFunc("/api/reports/ytd-summary", deps.ReportHandler.YearToDate).Methods("GET")
	r.HandleFunc("/api/reports/monthly-comparison", deps.ReportHandler.MonthlyComparison).Methods("GET")

	// Time entries
	r.HandleFunc("/api/timeentries/weekly", deps.WeeklySummaryHandler.GetWeeklySummary).Methods("GET")
	r.HandleFunc("/api/timeentries/export", deps.TimeEntryHandler.Export).Methods("GET")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.Update).Methods("PUT")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
