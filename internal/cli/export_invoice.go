package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/timelogger/timelogger/internal/app"
	"github.com/timelogger/timelogger/internal/config"
	"github.com/timelogger/timelogger/internal/database"
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/internal/utils"
	"github.com/timelogger/timelogger/pkg/invoice"
)

var (
	exportFrom       string
	exportTo         string
	exportCustomerId int
	exportOut        string
)

var exportInvoiceCmd = &cobra.Command{
	Use:   "export-invoice",
	Short: "Write the invoice workbook for a date range",
	Long: `Prices every invoiceable project with entries between --from and --to
and writes one worksheet per project to the --out file.`,
	Args: cobra.NoArgs,
	RunE: runExportInvoice,
}

func init() {
	exportInvoiceCmd.Flags().StringVar(&exportFrom, "from", "", "First day, YYYY-MM-DD")
	exportInvoiceCmd.Flags().StringVar(&exportTo, "to", "", "Last day, YYYY-MM-DD")
	exportInvoiceCmd.Flags().IntVar(&exportCustomerId, "customer", 0, "Only this customer id")
	exportInvoiceCmd.Flags().StringVar(&exportOut, "out", "", "Output file, defaults to Invoice_<from>_<to>.xlsx")
	_ = exportInvoiceCmd.MarkFlagRequired("from")
	_ = exportInvoiceCmd.MarkFlagRequired("to")
}

func runExportInvoice(cmd *cobra.Command, args []string) error {
	from, to, err := parseRange(exportFrom, exportTo)
	if err != nil {
		return err
	}
	out := exportOut
	if out == "" {
		out = fmt.Sprintf("Invoice_%s_%s.xlsx", from.Format(rest.DateLayout), to.Format(rest.DateLayout))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	deps := app.BuildDependencies(app.NewRepositories(db), &utils.SystemClock{}, cfg)
	return exportInvoice(cmd.Context(), deps.InvoiceService, deps.InvoiceXlsxRenderer, from, to, exportCustomerId, out)
}

func parseRange(fromValue, toValue string) (time.Time, time.Time, error) {
	from, err := time.Parse(rest.DateLayout, fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from must be in YYYY-MM-DD format")
	}
	to, err := time.Parse(rest.DateLayout, toValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to must not be before --from")
	}
	return from, to, nil
}

func exportInvoice(ctx context.Context, service invoice.Service, renderer invoice.Renderer, from, to time.Time, customerId int, out string) error {
	invoices, err := service.BuildInvoiceExport(ctx, from, to, customerId)
	if err != nil {
		return err
	}
	workbook, err := renderer.RenderInvoices(invoices)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, workbook, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", out, err)
	}
	log.Infof("Wrote %d project invoice(s) to %s", len(invoices), out)
	return nil
}
