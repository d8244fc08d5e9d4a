package practice

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionColumns = []string{
	"id", "owner_id", "language", "question_type_id", "text", "expected",
	"answer_given", "is_correct", "responded_at", "created_at",
}

func newTestRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	repo.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return repo, mock
}

func TestDBRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO questions").
					WithArgs("user-1", "fr", int64(2), "What does maison mean?", "house", now).
					WillReturnResult(sqlmock.NewResult(12, 1))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO questions").WillReturnError(fmt.Errorf("foreign key"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			q := &Question{OwnerID: "user-1", Language: "fr", QuestionTypeID: 2, Text: "What does maison mean?", Expected: "house"}
			err := repo.Create(context.Background(), q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(12), q.ID)
			assert.Equal(t, now, q.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT * FROM questions WHERE id = ?")

	t.Run("answered question", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		rows := sqlmock.NewRows(questionColumns).
			AddRow(12, "user-1", "fr", 2, "q", "house", "House", true, now, now)
		mock.ExpectQuery(query).WithArgs(int64(12)).WillReturnRows(rows)

		got, err := repo.FindByID(context.Background(), 12)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.AnswerGiven)
		assert.Equal(t, "House", *got.AnswerGiven)
		require.NotNil(t, got.IsCorrect)
		assert.True(t, *got.IsCorrect)
		assert.True(t, got.Answered())
	})

	t.Run("unanswered question", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		rows := sqlmock.NewRows(questionColumns).
			AddRow(12, "user-1", "fr", 2, "q", "house", nil, nil, nil, now)
		mock.ExpectQuery(query).WithArgs(int64(12)).WillReturnRows(rows)

		got, err := repo.FindByID(context.Background(), 12)
		require.NoError(t, err)
		assert.Nil(t, got.AnswerGiven)
		assert.False(t, got.Answered())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(query).WithArgs(int64(12)).WillReturnRows(sqlmock.NewRows(questionColumns))

		got, err := repo.FindByID(context.Background(), 12)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDBRepository_UpdateAnswer(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	answer := "house"
	correct := true

	repo, mock := newTestRepository(t)
	mock.ExpectExec("UPDATE questions SET").
		WithArgs(&answer, &correct, &now, int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	q := &Question{ID: 12, AnswerGiven: &answer, IsCorrect: &correct, RespondedAt: &now}
	require.NoError(t, repo.UpdateAnswer(context.Background(), q))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_ListByOwnerAndLanguage(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newTestRepository(t)
	rows := sqlmock.NewRows(questionColumns).
		AddRow(13, "user-1", "fr", 2, "q2", "a2", nil, nil, nil, now.Add(time.Minute)).
		AddRow(12, "user-1", "fr", 2, "q1", "a1", nil, nil, nil, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM questions WHERE owner_id = ? AND language = ? ORDER BY created_at DESC, id DESC LIMIT ?")).
		WithArgs("user-1", "fr", 5).
		WillReturnRows(rows)

	got, err := repo.ListByOwnerAndLanguage(context.Background(), "user-1", "fr", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(13), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
