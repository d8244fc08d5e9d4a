package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/at-ishikawa/langdrill/internal/word"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for values that were not given as flags.
type Prompter interface {
	Input(message, defaultValue string) (string, error)
	Select(message string, options []string, defaultValue string) (string, error)
}

// SurveyPrompter prompts on the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var out string
	if err := survey.AskOne(&survey.Input{
		Message: message,
		Default: defaultValue,
	}, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (SurveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if defaultValue != "" {
		prompt.Default = defaultValue
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// AskWord fills the empty fields of input.
func AskWord(p Prompter, input *word.CreateInput) error {
	if strings.TrimSpace(input.Text) == "" {
		text, err := p.Input("Text:", "")
		if err != nil {
			return fmt.Errorf("prompt text: %w", err)
		}
		input.Text = text
	}
	if input.Type == "" {
		options := make([]string, 0, len(word.Types))
		for _, t := range word.Types {
			options = append(options, string(t))
		}
		selected, err := p.Select("Type:", options, string(word.TypeMasculineNoun))
		if err != nil {
			return fmt.Errorf("prompt type: %w", err)
		}
		input.Type = word.Type(selected)
	}
	if input.Meaning == "" {
		meaning, err := p.Input("Meaning:", "")
		if err != nil {
			return fmt.Errorf("prompt meaning: %w", err)
		}
		input.Meaning = meaning
	}
	return nil
}
