package questiongen

import (
	"context"
	"strings"
)

// Word is the result of an exact-match dictionary lookup.
type Word struct {
	Text    string `json:"text" yaml:"text"`
	Meaning string `json:"meaning" yaml:"meaning"`
}

// LookupWordFunc looks up the first word whose text matches exactly. It returns
// nil when nothing matches. It may be called concurrently.
type LookupWordFunc func(ctx context.Context, text string) (*Word, error)

// Params holds the inputs of a single generation.
type Params struct {
	DataTemplate     string
	QuestionTemplate string
	AnswerTemplate   string
	// InitialContext is readable from the data template and is never modified.
	InitialContext map[string]any
	LookupWord     LookupWordFunc
}

// Result is a generated question. Text is shown to the learner and Expected is
// compared with their answer.
type Result struct {
	Text     string `json:"text"`
	Expected string `json:"expected"`
}

// Generate runs the data template, then renders the question and answer
// templates against the bindings it produced. A failure of the first stage is a
// *DataTemplateError and a failure of the second is a *QuestionAnswerTemplateError.
func Generate(ctx context.Context, params Params) (Result, error) {
	data := map[string]any{}
	if strings.TrimSpace(params.DataTemplate) != "" {
		lookupWord := params.LookupWord
		if lookupWord == nil {
			lookupWord = noWords
		}

		var err error
		data, err = runDataStep(ctx, params.DataTemplate, params.InitialContext, lookupWord)
		if err != nil {
			return Result{}, &DataTemplateError{Err: err}
		}
	}

	result, err := runQuestionAnswerStep(params.QuestionTemplate, params.AnswerTemplate, data)
	if err != nil {
		return Result{}, &QuestionAnswerTemplateError{Err: err}
	}
	return result, nil
}

// Check compiles the three templates without rendering them, and returns the
// same error types as Generate.
func Check(dataTemplate, questionTemplate, answerTemplate string) error {
	if strings.TrimSpace(dataTemplate) != "" {
		if _, err := compile(transformDataTemplate(dataTemplate), nil); err != nil {
			return &DataTemplateError{Err: err}
		}
	}
	for _, source := range []string{questionTemplate, answerTemplate} {
		if _, err := compile(source, nil); err != nil {
			return &QuestionAnswerTemplateError{Err: err}
		}
	}
	return nil
}

func noWords(context.Context, string) (*Word, error) {
	return nil, nil
}
