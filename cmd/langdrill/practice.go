package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/cli"
)

func newPracticeCommand() *cobra.Command {
	var (
		questionTypeID int64
		count          int
	)
	command := &cobra.Command{
		Use:   "practice",
		Short: "Answer questions generated from a question type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative")
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
			practiceCLI := cli.NewPracticeCLI(a.practice, ownerID, a.language(), questionTypeID, count)
			practiceCLI.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
			return practiceCLI.Run(cmd.Context())
		},
	}
	command.Flags().Int64VarP(&questionTypeID, "question-type", "q", 0, "id of the question type")
	command.Flags().IntVarP(&count, "count", "n", 10, "number of questions, 0 to ask until quit")
	_ = command.MarkFlagRequired("question-type")
	return command
}
