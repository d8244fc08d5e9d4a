package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langdrill/internal/cli"
	"github.com/at-ishikawa/langdrill/internal/word"
)

func newWordCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "word",
		Short: "Manage vocabulary words",
	}
	command.AddCommand(
		newWordListCommand(),
		newWordShowCommand(),
		newWordAddCommand(),
		newWordUpdateCommand(),
	)
	return command
}

func newWordListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List words in the current language",
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
			words, err := a.words.List(cmd.Context(), ownerID, a.language())
			if err != nil {
				return fmt.Errorf("words.List() > %w", err)
			}
			return cli.PrintWords(cmd.OutOrStdout(), words)
		},
	}
}

func newWordShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a word",
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
			entry, err := a.words.Get(cmd.Context(), ownerID, id, a.language())
			if err != nil {
				return fmt.Errorf("words.Get() > %w", err)
			}
			return cli.PrintWord(cmd.OutOrStdout(), entry)
		},
	}
}

type wordFlags struct {
	text     string
	wordType string
	meaning  string
	tags     string
}

func (f *wordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "word text")
	cmd.Flags().StringVar(&f.wordType, "type", "", "word type (nf, nm, nmf, vtr, vi, adj, adv)")
	cmd.Flags().StringVar(&f.meaning, "meaning", "", "meaning of the word")
	cmd.Flags().StringVar(&f.tags, "tags", "", "comma separated tags")
}

func newWordAddCommand() *cobra.Command {
	var (
		flags   wordFlags
		noInput bool
	)
	command := &cobra.Command{
		Use:   "add",
		Short: "Add a word, prompting for values not given as flags",
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
			input := word.CreateInput{
				Language: a.language(),
				Text:     flags.text,
				Type:     word.Type(flags.wordType),
				Meaning:  flags.meaning,
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = &flags.tags
			}
			if !noInput {
				if err := cli.AskWord(cli.SurveyPrompter{}, &input); err != nil {
					return err
				}
			}

			id, err := a.words.Create(cmd.Context(), ownerID, input)
			if err != nil {
				return fmt.Errorf("words.Create() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added word %d\n", id)
			return err
		},
	}
	flags.register(command)
	command.Flags().BoolVar(&noInput, "no-input", false, "fail instead of prompting for missing values")
	return command
}

func newWordUpdateCommand() *cobra.Command {
	var flags wordFlags
	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a word",
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
			current, err := a.words.Get(cmd.Context(), ownerID, id, a.language())
			if err != nil {
				return fmt.Errorf("words.Get() > %w", err)
			}

			input := word.UpdateInput{
				Text:    current.Text,
				Type:    current.Type,
				Meaning: current.Meaning,
				Tags:    current.Tags,
			}
			if cmd.Flags().Changed("text") {
				input.Text = flags.text
			}
			if cmd.Flags().Changed("type") {
				input.Type = word.Type(flags.wordType)
			}
			if cmd.Flags().Changed("meaning") {
				input.Meaning = flags.meaning
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = &flags.tags
			}

			if err := a.words.Update(cmd.Context(), ownerID, id, input); err != nil {
				return fmt.Errorf("words.Update() > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated word %d\n", id)
			return err
		},
	}
	flags.register(command)
	return command
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
