package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/seed"
)

func newImportCommand() *cobra.Command {
	var file string
	command := &cobra.Command{
		Use:   "import",
		Short: "Import words and question types from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seedFile, err := seed.ReadFile(file)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ownerID, err := a.ownerID()
			if err != nil {
				return err
			}
			if seedFile.Language == "" {
				seedFile.Language = a.language()
			}

			summary, err := seed.NewImporter(a.db).Import(cmd.Context(), ownerID, seedFile)
			if err != nil {
				return fmt.Errorf("import %s > %w", file, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words and %d question types\n", summary.Words, summary.QuestionTypes)
			return err
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "YAML file to import")
	_ = command.MarkFlagRequired("file")
	return command
}
