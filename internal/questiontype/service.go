package questiontype

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/language"
	"github.com/at-ishikawa/langdrill/internal/questiongen"
	"github.com/at-ishikawa/langdrill/internal/validation"
)

// CreateInput holds the fields of a new question type.
type CreateInput struct {
	Language         string `validate:"language"`
	Name             string
	DataTemplate     string
	QuestionTemplate string `validate:"required"`
	AnswerTemplate   string `validate:"required"`
}

// UpdateInput holds the editable fields of a question type.
type UpdateInput struct {
	Name             string
	DataTemplate     string
	QuestionTemplate string `validate:"required"`
	AnswerTemplate   string `validate:"required"`
}

// Service implements the question type use cases on top of a Repository.
type Service struct {
	repo      Repository
	validator *validation.Validator
}

// NewService creates a new Service.
func NewService(repo Repository) (*Service, error) {
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("validation.New() > %w", err)
	}
	return &Service{repo: repo, validator: v}, nil
}

// Get returns a question type of ownerID in the given language.
func (s *Service) Get(ctx context.Context, ownerID string, id int64, lang string) (*QuestionType, error) {
	if ownerID == "" {
		return nil, ErrNotFound
	}
	qt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.FindByID(%d) > %w", id, err)
	}
	if qt == nil || qt.OwnerID != ownerID || qt.Language != lang {
		return nil, ErrNotFound
	}
	return qt, nil
}

// List returns the question types of ownerID in the given language, sorted by name.
func (s *Service) List(ctx context.Context, ownerID, lang string) ([]QuestionType, error) {
	if ownerID == "" {
		return []QuestionType{}, nil
	}
	questionTypes, err := s.repo.ListByOwnerAndLanguage(ctx, ownerID, lang)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByOwnerAndLanguage() > %w", err)
	}

	collator := language.NewCollator(lang)
	slices.SortStableFunc(questionTypes, func(a, b QuestionType) int {
		return collator.CompareString(a.Name, b.Name)
	})
	return questionTypes, nil
}

// Create adds a question type for ownerID and returns its id.
// The templates must compile.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (int64, error) {
	if ownerID == "" {
		return 0, auth.ErrUnauthenticated
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if err := s.validator.Struct("question type", input); err != nil {
		return 0, err
	}
	if err := Validate(input.DataTemplate, input.QuestionTemplate, input.AnswerTemplate); err != nil {
		return 0, err
	}

	qt := &QuestionType{
		OwnerID:          ownerID,
		Language:         input.Language,
		Name:             name,
		DataTemplate:     input.DataTemplate,
		QuestionTemplate: input.QuestionTemplate,
		AnswerTemplate:   input.AnswerTemplate,
	}
	if err := s.repo.Create(ctx, qt); err != nil {
		return 0, fmt.Errorf("repo.Create() > %w", err)
	}
	return qt.ID, nil
}

// Update replaces the name and templates of a question type owned by ownerID.
func (s *Service) Update(ctx context.Context, ownerID string, id int64, input UpdateInput) error {
	if ownerID == "" {
		return auth.ErrUnauthenticated
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrEmptyName
	}
	if err := s.validator.Struct("question type", input); err != nil {
		return err
	}
	if err := Validate(input.DataTemplate, input.QuestionTemplate, input.AnswerTemplate); err != nil {
		return err
	}

	qt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.FindByID(%d) > %w", id, err)
	}
	if qt == nil || qt.OwnerID != ownerID {
		return ErrNotFound
	}

	qt.Name = name
	qt.DataTemplate = input.DataTemplate
	qt.QuestionTemplate = input.QuestionTemplate
	qt.AnswerTemplate = input.AnswerTemplate
	if err := s.repo.Update(ctx, qt); err != nil {
		return fmt.Errorf("repo.Update(%d) > %w", id, err)
	}
	return nil
}

// Validate reports a *questiongen.DataTemplateError or
// *questiongen.QuestionAnswerTemplateError when a template does not compile.
func Validate(dataTemplate, questionTemplate, answerTemplate string) error {
	return questiongen.Check(dataTemplate, questionTemplate, answerTemplate)
}
