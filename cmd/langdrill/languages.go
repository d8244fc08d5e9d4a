package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/cli"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.PrintLanguages(cmd.OutOrStdout(), currentLanguage(cfg))
		},
	}
}
