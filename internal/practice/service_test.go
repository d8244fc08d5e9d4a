package practice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/config"
	mock_practice "github.com/at-ishikawa/langdrill/internal/mocks/practice"
	mock_questiontype "github.com/at-ishikawa/langdrill/internal/mocks/questiontype"
	mock_word "github.com/at-ishikawa/langdrill/internal/mocks/word"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiongen"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/word"
)

type fixture struct {
	service       *practice.Service
	questions     *mock_practice.MockRepository
	questionTypes *mock_questiontype.MockRepository
	words         *mock_word.MockRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		questions:     mock_practice.NewMockRepository(ctrl),
		questionTypes: mock_questiontype.NewMockRepository(ctrl),
		words:         mock_word.NewMockRepository(ctrl),
	}

	questionTypeService, err := questiontype.NewService(f.questionTypes)
	require.NoError(t, err)
	wordService, err := word.NewService(f.words)
	require.NoError(t, err)

	f.service = practice.NewService(f.questions, questionTypeService, wordService, config.LookupConfig{
		MaxRetryAttempts: 1,
		InitialBackoff:   time.Millisecond,
	})
	return f
}

func meaningQuestionType() *questiontype.QuestionType {
	return &questiontype.QuestionType{
		ID:               2,
		OwnerID:          "user-1",
		Language:         "fr",
		Name:             "Meaning",
		DataTemplate:     `w = word text="maison"`,
		QuestionTemplate: "What does {{w.Text}} mean?",
		AnswerTemplate:   "{{w.Meaning}}",
	}
}

func TestService_GenerateQuestion(t *testing.T) {
	t.Run("generates and stores a question", func(t *testing.T) {
		f := newFixture(t)
		f.questionTypes.EXPECT().FindByID(gomock.Any(), int64(2)).Return(meaningQuestionType(), nil)
		f.words.EXPECT().FindFirstByText(gomock.Any(), "user-1", "fr", "maison").
			Return(&word.Word{ID: 1, Text: "maison", Meaning: "house"}, nil)
		f.questions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *practice.Question) error {
			assert.Equal(t, "user-1", q.OwnerID)
			assert.Equal(t, "fr", q.Language)
			assert.Equal(t, int64(2), q.QuestionTypeID)
			q.ID = 30
			return nil
		})

		got, err := f.service.GenerateQuestion(context.Background(), "user-1", 2, "fr")
		require.NoError(t, err)
		assert.Equal(t, &practice.GeneratedQuestion{
			QuestionID: 30,
			Text:       "What does maison mean?",
			Expected:   "house",
		}, got)
	})

	t.Run("retries a failed lookup", func(t *testing.T) {
		f := newFixture(t)
		f.questionTypes.EXPECT().FindByID(gomock.Any(), int64(2)).Return(meaningQuestionType(), nil)
		gomock.InOrder(
			f.words.EXPECT().FindFirstByText(gomock.Any(), "user-1", "fr", "maison").
				Return(nil, errors.New("DB connection failed")),
			f.words.EXPECT().FindFirstByText(gomock.Any(), "user-1", "fr", "maison").
				Return(&word.Word{Text: "maison", Meaning: "house"}, nil),
		)
		f.questions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.service.GenerateQuestion(context.Background(), "user-1", 2, "fr")
		require.NoError(t, err)
		assert.Equal(t, "house", got.Expected)
	})

	t.Run("lookup failure is a data template error", func(t *testing.T) {
		f := newFixture(t)
		f.questionTypes.EXPECT().FindByID(gomock.Any(), int64(2)).Return(meaningQuestionType(), nil)
		f.words.EXPECT().FindFirstByText(gomock.Any(), "user-1", "fr", "maison").
			Return(nil, errors.New("DB connection failed")).Times(2)

		_, err := f.service.GenerateQuestion(context.Background(), "user-1", 2, "fr")
		var dataErr *questiongen.DataTemplateError
		require.ErrorAs(t, err, &dataErr)
		assert.Contains(t, err.Error(), "DB connection failed")
	})

	t.Run("broken answer template", func(t *testing.T) {
		f := newFixture(t)
		qt := meaningQuestionType()
		qt.DataTemplate = ""
		qt.AnswerTemplate = "{{#if x}}"
		f.questionTypes.EXPECT().FindByID(gomock.Any(), int64(2)).Return(qt, nil)

		_, err := f.service.GenerateQuestion(context.Background(), "user-1", 2, "fr")
		var qaErr *questiongen.QuestionAnswerTemplateError
		assert.ErrorAs(t, err, &qaErr)
	})

	t.Run("question type of another language", func(t *testing.T) {
		f := newFixture(t)
		f.questionTypes.EXPECT().FindByID(gomock.Any(), int64(2)).Return(meaningQuestionType(), nil)

		_, err := f.service.GenerateQuestion(context.Background(), "user-1", 2, "en")
		assert.ErrorIs(t, err, questiontype.ErrNotFound)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GenerateQuestion(context.Background(), "", 2, "fr")
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestService_SubmitAnswer(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{name: "correct", answer: "house", wantCorrect: true},
		{name: "correct ignoring case and spaces", answer: " HOUSE ", wantCorrect: true},
		{name: "incorrect", answer: "home", wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.questions.EXPECT().FindByID(gomock.Any(), int64(30)).
				Return(&practice.Question{ID: 30, OwnerID: "user-1", Expected: "house"}, nil)
			f.questions.EXPECT().UpdateAnswer(gomock.Any(), gomock.Any()).Return(nil)

			got, err := f.service.SubmitAnswer(context.Background(), "user-1", 30, tt.answer)
			require.NoError(t, err)
			require.NotNil(t, got.IsCorrect)
			assert.Equal(t, tt.wantCorrect, *got.IsCorrect)
			assert.Equal(t, tt.answer, *got.AnswerGiven)
			assert.True(t, got.Answered())
		})
	}

	t.Run("foreign question", func(t *testing.T) {
		f := newFixture(t)
		f.questions.EXPECT().FindByID(gomock.Any(), int64(30)).
			Return(&practice.Question{ID: 30, OwnerID: "user-2", Expected: "house"}, nil)

		_, err := f.service.SubmitAnswer(context.Background(), "user-1", 30, "house")
		assert.ErrorIs(t, err, practice.ErrNotFound)
	})

	t.Run("missing question", func(t *testing.T) {
		f := newFixture(t)
		f.questions.EXPECT().FindByID(gomock.Any(), int64(30)).Return(nil, nil)

		_, err := f.service.SubmitAnswer(context.Background(), "user-1", 30, "house")
		assert.ErrorIs(t, err, practice.ErrNotFound)
	})
}

func TestService_History(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		f := newFixture(t)
		f.questions.EXPECT().ListByOwnerAndLanguage(gomock.Any(), "user-1", "fr", practice.DefaultHistoryLimit).
			Return([]practice.Question{{ID: 31}, {ID: 30}}, nil)

		got, err := f.service.History(context.Background(), "user-1", "fr", 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.service.History(context.Background(), "", "fr", 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
