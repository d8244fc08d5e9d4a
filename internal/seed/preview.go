package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/langdrill/internal/questiongen"
)

// Preview is a question type tried out against an in-memory dictionary,
// without a database.
type Preview struct {
	QuestionType QuestionType       `yaml:"question_type"`
	Words        []questiongen.Word `yaml:"words"`
	Context      map[string]any     `yaml:"context"`
}

// LoadPreview reads a preview file.
func LoadPreview(path string) (*Preview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var preview Preview
	if err := yaml.Unmarshal(data, &preview); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	return &preview, nil
}

// Lookup finds the first word of the preview whose text matches exactly.
func (p *Preview) Lookup(_ context.Context, text string) (*questiongen.Word, error) {
	for _, w := range p.Words {
		if w.Text == text {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

// Generate renders one question from the preview.
func (p *Preview) Generate(ctx context.Context) (questiongen.Result, error) {
	return questiongen.Generate(ctx, questiongen.Params{
		DataTemplate:     p.QuestionType.DataTemplate,
		QuestionTemplate: p.QuestionType.QuestionTemplate,
		AnswerTemplate:   p.QuestionType.AnswerTemplate,
		InitialContext:   p.Context,
		LookupWord:       p.Lookup,
	})
}
