package main

import (
	"github.com/spf13/cobra"

	"catalog/internal/config"
	"catalog/internal/infra"
	"catalog/internal/logger"
)

func newMigrateCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewLogger(cfg().LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := infra.OpenDatabase(cfg(), log)
			if err != nil {
				return err
			}
			defer infra.CloseDatabase(db, log)

			if err := infra.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("Migration finished")
			return nil
		},
	}
}
