package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/langdrill/internal/cli"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/seed"
)

func newQuestionTypeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "question-type",
		Aliases: []string{"qt"},
		Short:   "Manage question types",
	}
	command.AddCommand(
		newQuestionTypeListCommand(),
		newQuestionTypeShowCommand(),
		newQuestionTypeAddCommand(),
		newQuestionTypeUpdateCommand(),
	)
	return command
}

func newQuestionTypeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List question types in the current language",
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
			questionTypes, err := a.questionTypes.List(cmd.Context(), ownerID, a.language())
			if err != nil {
				return fmt.Errorf("questionTypes.List() > %w", err)
			}
			return cli.PrintQuestionTypes(cmd.OutOrStdout(), questionTypes)
		},
	}
}

func newQuestionTypeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a question type with its templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
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
			qt, err := a.questionTypes.Get(cmd.Context(), ownerID, id, a.language())
			if err != nil {
				return fmt.Errorf("questionTypes.Get() > %w", err)
			}
			return cli.PrintQuestionType(cmd.OutOrStdout(), qt)
		},
	}
}

// questionTypeFlags reads templates from flags, or from a YAML file with
// the layout of an import file entry.
type questionTypeFlags struct {
	file             string
	name             string
	dataTemplate     string
	questionTemplate string
	answerTemplate   string
}

func (f *questionTypeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file with name, data_template, question_template and answer_template")
	cmd.Flags().StringVar(&f.name, "name", "", "name of the question type")
	cmd.Flags().StringVar(&f.dataTemplate, "data", "", "data template")
	cmd.Flags().StringVar(&f.questionTemplate, "question", "", "question template")
	cmd.Flags().StringVar(&f.answerTemplate, "answer", "", "answer template")
}

// apply overwrites the fields of qt given by the file, then by flags.
func (f *questionTypeFlags) apply(cmd *cobra.Command, qt *seed.QuestionType) error {
	if f.file != "" {
		content, err := os.ReadFile(f.file)
		if err != nil {
			return fmt.Errorf("os.ReadFile(%s) > %w", f.file, err)
		}
		var fromFile seed.QuestionType
		if err := yaml.Unmarshal(content, &fromFile); err != nil {
			return fmt.Errorf("yaml.Unmarshal(%s) > %w", f.file, err)
		}
		if fromFile.Name != "" {
			qt.Name = fromFile.Name
		}
		if fromFile.DataTemplate != "" {
			qt.DataTemplate = fromFile.DataTemplate
		}
		if fromFile.QuestionTemplate != "" {
			qt.QuestionTemplate = fromFile.QuestionTemplate
		}
		if fromFile.AnswerTemplate != "" {
			qt.AnswerTemplate = fromFile.AnswerTemplate
		}
	}
	if cmd.Flags().Changed("name") {
		qt.Name = f.name
	}
	if cmd.Flags().Changed("data") {
		qt.DataTemplate = f.dataTemplate
	}
	if cmd.Flags().Changed("question") {
		qt.QuestionTemplate = f.questionTemplate
	}
	if cmd.Flags().Changed("answer") {
		qt.AnswerTemplate = f.answerTemplate
	}
	return nil
}

func newQuestionTypeAddCommand() *cobra.Command {
	var flags questionTypeFlags
	command := &cobra.Command{
		Use:   "add",
		Short: "Add a question type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var qt seed.QuestionType
			if err := flags.apply(cmd, &qt); err != nil {
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
			id, err := a.questionTypes.Create(cmd.Context(), ownerID, questiontype.CreateInput{
				Language:         a.language(),
				Name:             qt.Name,
				DataTemplate:     qt.DataTemplate,
				QuestionTemplate: qt.QuestionTemplate,
				AnswerTemplate:   qt.AnswerTemplate,
			})
			if err != nil {
				return fmt.Errorf("questionTypes.Create() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added question type %d\n", id)
			return err
		},
	}
	flags.register(command)
	return command
}

func newQuestionTypeUpdateCommand() *cobra.Command {
	var flags questionTypeFlags
	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a question type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
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
			current, err := a.questionTypes.Get(cmd.Context(), ownerID, id, a.language())
			if err != nil {
				return fmt.Errorf("questionTypes.Get() > %w", err)
			}

			qt := seed.QuestionType{
				Name:             current.Name,
				DataTemplate:     current.DataTemplate,
				QuestionTemplate: current.QuestionTemplate,
				AnswerTemplate:   current.AnswerTemplate,
			}
			if err := flags.apply(cmd, &qt); err != nil {
				return err
			}
			if err := a.questionTypes.Update(cmd.Context(), ownerID, id, questiontype.UpdateInput{
				Name:             qt.Name,
				DataTemplate:     qt.DataTemplate,
				QuestionTemplate: qt.QuestionTemplate,
				AnswerTemplate:   qt.AnswerTemplate,
			}); err != nil {
				return fmt.Errorf("questionTypes.Update() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated question type %d\n", id)
			return err
		},
	}
	flags.register(command)
	return command
}
