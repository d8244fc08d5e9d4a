package practice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/practice/mock_repository.go -package=mock_practice

// Repository defines operations for managing generated questions.
type Repository interface {
	Create(ctx context.Context, q *Question) error
	FindByID(ctx context.Context, id int64) (*Question, error)
	UpdateAnswer(ctx context.Context, q *Question) error
	// ListByOwnerAndLanguage returns the newest questions first.
	ListByOwnerAndLanguage(ctx context.Context, ownerID, language string, limit int) ([]Question, error)
}

// DBRepository implements Repository with a SQL database or transaction.
type DBRepository struct {
	db  sqlx.ExtContext
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

// Create inserts q and sets its ID and creation time.
func (r *DBRepository) Create(ctx context.Context, q *Question) error {
	q.CreatedAt = r.now().UTC()

	result, err := sqlx.NamedExecContext(ctx, r.db,
		`INSERT INTO questions (owner_id, language, question_type_id, text, expected, created_at)
		VALUES (:owner_id, :language, :question_type_id, :text, :expected, :created_at)`,
		q)
	if err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(insert question) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	q.ID = id
	return nil
}

// FindByID returns the question with id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Question, error) {
	var q Question
	err := sqlx.GetContext(ctx, r.db, &q, "SELECT * FROM questions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(question) > %w", err)
	}
	return &q, nil
}

// UpdateAnswer saves the answer fields of q.
func (r *DBRepository) UpdateAnswer(ctx context.Context, q *Question) error {
	if _, err := sqlx.NamedExecContext(ctx, r.db,
		`UPDATE questions SET answer_given = :answer_given, is_correct = :is_correct, responded_at = :responded_at
		WHERE id = :id`,
		q); err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(update answer) > %w", err)
	}
	return nil
}

func (r *DBRepository) ListByOwnerAndLanguage(ctx context.Context, ownerID, language string, limit int) ([]Question, error) {
	var questions []Question
	if err := sqlx.SelectContext(ctx, r.db, &questions,
		"SELECT * FROM questions WHERE owner_id = ? AND language = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		ownerID, language, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(questions) > %w", err)
	}
	return questions, nil
}
