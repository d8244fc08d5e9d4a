// Package seed imports words and question types from YAML files.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/langdrill/internal/database"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/word"
)

// File is the YAML layout of an import file. Entries without a language
// use Language.
type File struct {
	Language      string         `yaml:"language"`
	Words         []WordEntry    `yaml:"words"`
	QuestionTypes []QuestionType `yaml:"question_types"`
}

type WordEntry struct {
	Language string    `yaml:"language"`
	Text     string    `yaml:"text"`
	Type     word.Type `yaml:"type"`
	Meaning  string    `yaml:"meaning"`
	Tags     *string   `yaml:"tags"`
}

type QuestionType struct {
	Language         string `yaml:"language"`
	Name             string `yaml:"name"`
	DataTemplate     string `yaml:"data_template"`
	QuestionTemplate string `yaml:"question_template"`
	AnswerTemplate   string `yaml:"answer_template"`
}

// Summary counts the imported records.
type Summary struct {
	Words         int
	QuestionTypes int
}

// ReadFile parses an import file.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Decode parses an import file from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return &file, nil
}

// Importer writes import files into the database.
type Importer struct {
	db *sqlx.DB
}

func NewImporter(db *sqlx.DB) *Importer {
	return &Importer{db: db}
}

// Import creates every entry of file for ownerID in a single transaction.
// Entries go through the same validation as the word and question type
// services, and nothing is written when one of them is invalid.
func (i *Importer) Import(ctx context.Context, ownerID string, file *File) (Summary, error) {
	var summary Summary
	err := database.RunInTx(ctx, i.db, func(ctx context.Context, tx *sqlx.Tx) error {
		words, err := word.NewService(word.NewDBRepository(tx))
		if err != nil {
			return fmt.Errorf("word.NewService() > %w", err)
		}
		questionTypes, err := questiontype.NewService(questiontype.NewDBRepository(tx))
		if err != nil {
			return fmt.Errorf("questiontype.NewService() > %w", err)
		}

		summary, err = importFile(ctx, ownerID, file, words, questionTypes)
		return err
	})
	if err != nil {
		return Summary{}, err
	}

	slog.Info("import finished", "owner", ownerID, "words", summary.Words, "question_types", summary.QuestionTypes)
	return summary, nil
}

func importFile(ctx context.Context, ownerID string, file *File, words *word.Service, questionTypes *questiontype.Service) (Summary, error) {
	var summary Summary
	for idx, entry := range file.Words {
		if _, err := words.Create(ctx, ownerID, word.CreateInput{
			Language: orDefault(entry.Language, file.Language),
			Text:     entry.Text,
			Type:     entry.Type,
			Meaning:  entry.Meaning,
			Tags:     entry.Tags,
		}); err != nil {
			return Summary{}, fmt.Errorf("words[%d] (%s): %w", idx, entry.Text, err)
		}
		summary.Words++
	}

	for idx, entry := range file.QuestionTypes {
		if _, err := questionTypes.Create(ctx, ownerID, questiontype.CreateInput{
			Language:         orDefault(entry.Language, file.Language),
			Name:             entry.Name,
			DataTemplate:     entry.DataTemplate,
			QuestionTemplate: entry.QuestionTemplate,
			AnswerTemplate:   entry.AnswerTemplate,
		}); err != nil {
			return Summary{}, fmt.Errorf("question_types[%d] (%s): %w", idx, entry.Name, err)
		}
		summary.QuestionTypes++
	}
	return summary, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
