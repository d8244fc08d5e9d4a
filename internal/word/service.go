package word

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

// CreateInput holds the fields of a new word.
type CreateInput struct {
	Language string `validate:"language"`
	Text     string
	Type     Type `validate:"oneof=nf nm nmf vtr vi adj adv"`
	Meaning  string
	Tags     *string
}

// UpdateInput holds the editable fields of a word.
type UpdateInput struct {
	Text    string
	Type    Type `validate:"oneof=nf nm nmf vtr vi adj adv"`
	Meaning string
	Tags    *string
}

// Service implements the word use cases on top of a Repository.
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

// Get returns a word of ownerID in the given language.
func (s *Service) Get(ctx context.Context, ownerID string, id int64, lang string) (*Word, error) {
	if ownerID == "" {
		return nil, ErrNotFound
	}
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.FindByID(%d) > %w", id, err)
	}
	if w == nil || w.OwnerID != ownerID || w.Language != lang {
		return nil, ErrNotFound
	}
	return w, nil
}

// List returns the words of ownerID in the given language, sorted by text.
// An unauthenticated caller gets no words.
func (s *Service) List(ctx context.Context, ownerID, lang string) ([]Word, error) {
	if ownerID == "" {
		return []Word{}, nil
	}
	words, err := s.repo.ListByOwnerAndLanguage(ctx, ownerID, lang)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByOwnerAndLanguage() > %w", err)
	}

	collator := language.NewCollator(lang)
	slices.SortStableFunc(words, func(a, b Word) int {
		return collator.CompareString(a.Text, b.Text)
	})
	return words, nil
}

// Create adds a word for ownerID and returns its id.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (int64, error) {
	if ownerID == "" {
		return 0, auth.ErrUnauthenticated
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return 0, ErrEmptyText
	}
	if err := s.validator.Struct("word", input); err != nil {
		return 0, err
	}

	w := &Word{
		OwnerID:  ownerID,
		Language: input.Language,
		Text:     text,
		Type:     input.Type,
		Meaning:  input.Meaning,
		Tags:     input.Tags,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return 0, fmt.Errorf("repo.Create() > %w", err)
	}
	return w.ID, nil
}

// Update replaces the editable fields of a word owned by ownerID.
func (s *Service) Update(ctx context.Context, ownerID string, id int64, input UpdateInput) error {
	if ownerID == "" {
		return auth.ErrUnauthenticated
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return ErrEmptyText
	}
	if err := s.validator.Struct("word", input); err != nil {
		return err
	}

	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.FindByID(%d) > %w", id, err)
	}
	if w == nil || w.OwnerID != ownerID {
		return ErrNotFound
	}

	w.Text = text
	w.Type = input.Type
	w.Meaning = input.Meaning
	w.Tags = input.Tags
	if err := s.repo.Update(ctx, w); err != nil {
		return fmt.Errorf("repo.Update(%d) > %w", id, err)
	}
	return nil
}

// Lookup returns the dictionary lookup used by the word helper of data
// templates, bound to one owner and language.
func (s *Service) Lookup(ownerID, lang string) questiongen.LookupWordFunc {
	return func(ctx context.Context, text string) (*questiongen.Word, error) {
		w, err := s.repo.FindFirstByText(ctx, ownerID, lang, text)
		if err != nil {
			return nil, fmt.Errorf("repo.FindFirstByText(%q) > %w", text, err)
		}
		if w == nil {
			return nil, nil
		}
		return &questiongen.Word{Text: w.Text, Meaning: w.Meaning}, nil
	}
}
