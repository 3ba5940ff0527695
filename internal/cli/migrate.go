package cli

import (
	"github.com/spf13/cobra"
	"github.com/timelogger/timelogger/internal/config"
	"github.com/timelogger/timelogger/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return database.Migrate(cfg.Database)
	},
}
