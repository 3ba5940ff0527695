package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timelogger/timelogger/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "timelogger",
	Short: "Time logging backend with reports and invoice export",
	Long: `timelogger serves the reporting API of the time logger desktop application.
Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportInvoiceCmd)
}
