package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/config"
	"github.com/at-ishikawa/langdrill/internal/questiongen"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
)

// DefaultHistoryLimit is used by History when limit is not positive.
const DefaultHistoryLimit = 20

// QuestionTypeFinder returns a question type visible to an owner.
type QuestionTypeFinder interface {
	Get(ctx context.Context, ownerID string, id int64, lang string) (*questiontype.QuestionType, error)
}

// WordLookup builds the dictionary lookup of an owner in a language.
type WordLookup interface {
	Lookup(ownerID, lang string) questiongen.LookupWordFunc
}

// Service implements the practice use cases.
type Service struct {
	questions     Repository
	questionTypes QuestionTypeFinder
	words         WordLookup
	lookupConfig  config.LookupConfig
	now           func() time.Time
}

// NewService creates a new Service.
func NewService(questions Repository, questionTypes QuestionTypeFinder, words WordLookup, lookupConfig config.LookupConfig) *Service {
	return &Service{
		questions:     questions,
		questionTypes: questionTypes,
		words:         words,
		lookupConfig:  lookupConfig,
		now:           time.Now,
	}
}

// GenerateQuestion renders a question from a question type and stores it.
// Template failures are returned as *questiongen.DataTemplateError or
// *questiongen.QuestionAnswerTemplateError.
func (s *Service) GenerateQuestion(ctx context.Context, ownerID string, questionTypeID int64, lang string) (*GeneratedQuestion, error) {
	if ownerID == "" {
		return nil, auth.ErrUnauthenticated
	}
	qt, err := s.questionTypes.Get(ctx, ownerID, questionTypeID, lang)
	if err != nil {
		return nil, err
	}

	lookup := retryingLookup(s.words.Lookup(ownerID, lang), s.lookupConfig.MaxRetryAttempts, s.lookupConfig.InitialBackoff)
	result, err := questiongen.Generate(ctx, questiongen.Params{
		DataTemplate:     qt.DataTemplate,
		QuestionTemplate: qt.QuestionTemplate,
		AnswerTemplate:   qt.AnswerTemplate,
		InitialContext:   map[string]any{},
		LookupWord:       lookup,
	})
	if err != nil {
		slog.Debug("question generation failed", "question_type_id", questionTypeID, "error", err)
		return nil, err
	}

	q := &Question{
		OwnerID:        ownerID,
		Language:       lang,
		QuestionTypeID: qt.ID,
		Text:           result.Text,
		Expected:       result.Expected,
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("questions.Create() > %w", err)
	}
	return &GeneratedQuestion{QuestionID: q.ID, Text: q.Text, Expected: q.Expected}, nil
}

// SubmitAnswer grades answer against the expected answer of a question owned by ownerID.
// Answers are compared case-insensitively, ignoring surrounding spaces.
func (s *Service) SubmitAnswer(ctx context.Context, ownerID string, questionID int64, answer string) (*Question, error) {
	if ownerID == "" {
		return nil, auth.ErrUnauthenticated
	}
	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("questions.FindByID(%d) > %w", questionID, err)
	}
	if q == nil || q.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	correct := IsCorrect(answer, q.Expected)
	respondedAt := s.now().UTC()
	q.AnswerGiven = &answer
	q.IsCorrect = &correct
	q.RespondedAt = &respondedAt
	if err := s.questions.UpdateAnswer(ctx, q); err != nil {
		return nil, fmt.Errorf("questions.UpdateAnswer(%d) > %w", questionID, err)
	}
	return q, nil
}

// History returns the latest questions of ownerID in a language, newest first.
func (s *Service) History(ctx context.Context, ownerID, lang string, limit int) ([]Question, error) {
	if ownerID == "" {
		return []Question{}, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	questions, err := s.questions.ListByOwnerAndLanguage(ctx, ownerID, lang, limit)
	if err != nil {
		return nil, fmt.Errorf("questions.ListByOwnerAndLanguage() > %w", err)
	}
	return questions, nil
}

// IsCorrect compares an answer with the expected one.
func IsCorrect(answer, expected string) bool {
	return normalizeAnswer(answer) == normalizeAnswer(expected)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
