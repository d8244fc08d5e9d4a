package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/cli"
	"github.com/at-ishikawa/langdrill/internal/seed"
)

func newPreviewCommand() *cobra.Command {
	var file string
	command := &cobra.Command{
		Use:   "preview",
		Short: "Render a question type against words listed in a YAML file",
		Long: `Render a question type without a database.

The file holds a question_type with its templates, the words the word
helper can find, and an optional initial context.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := seed.LoadPreview(file)
			if err != nil {
				return err
			}
			result, err := p.Generate(cmd.Context())
			if err != nil {
				return fmt.Errorf("preview %s > %w", file, err)
			}
			return cli.PrintPreview(cmd.OutOrStdout(), result)
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "YAML preview file")
	_ = command.MarkFlagRequired("file")
	return command
}
