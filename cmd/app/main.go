package main

import (
	"os"

	"github.com/spf13/cobra"

	"catalog/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfg     *config.Config
		envFile string
	)

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Product and category catalog web application",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	root.AddCommand(
		newServeCommand(func() *config.Config { return cfg }),
		newMigrateCommand(func() *config.Config { return cfg }),
	)
	return root
}
