package main

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/cli"
	"github.com/at-ishikawa/langdrill/internal/practice"
)

func newHistoryCommand() *cobra.Command {
	var (
		limit int
		since string
	)
	command := &cobra.Command{
		Use:   "history",
		Short: "Show recently answered and pending questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ownerID, err := a.ownerID()
			if err != nil {
				return err
			}
			questions, err := a.practice.History(cmd.Context(), ownerID, a.language(), limit)
			if err != nil {
				return fmt.Errorf("practice.History() > %w", err)
			}
			if since != "" {
				sinceTime, err := dateparse.ParseLocal(since)
				if err != nil {
					return fmt.Errorf("invalid --since %q: %w", since, err)
				}
				questions = cli.FilterSince(questions, sinceTime)
			}
			return cli.PrintHistory(cmd.OutOrStdout(), questions)
		},
	}
	command.Flags().IntVarP(&limit, "limit", "l", practice.DefaultHistoryLimit, "maximum number of questions")
	command.Flags().StringVar(&since, "since", "", "only show questions created at or after this date, e.g. 2025-01-31 or 'Jan 31 2025'")
	return command
}
